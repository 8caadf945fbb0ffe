package session

import (
	"testing"

	"github.com/concord-chat/concord/discord"
)

func TestGuildLookup(t *testing.T) {
	sess := New()
	_, ok := sess.Guild(1)
	if ok {
		t.Fatal("expected no guild")
	}

	guild := discord.NewGuild(1, "home")
	sess.AddGuild(guild)
	got, ok := sess.Guild(1)
	if !ok {
		t.Fatal("guild not found")
	}
	if got != guild {
		t.Fatal("got a different guild instance")
	}

	sess.RemoveGuild(1)
	_, ok = sess.Guild(1)
	if ok {
		t.Fatal("expected guild removed")
	}
}
