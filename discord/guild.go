package discord

import (
	"github.com/concord-chat/concord/cache"
	"github.com/disgoorg/snowflake/v2"
)

// Guild is the owning context of every guild-scoped channel. Channels
// holds every materialized channel of the guild keyed by ID; threads
// additionally live in their parent channel's own thread cache.
type Guild struct {
	ID       snowflake.ID
	Name     string
	Channels *cache.Cache[snowflake.ID, Channel]
}

func NewGuild(id snowflake.ID, name string) *Guild {
	return &Guild{
		ID:       id,
		Name:     name,
		Channels: cache.New[snowflake.ID, Channel](),
	}
}

// ThreadParent looks up the cached channel under id and reports whether
// it is a kind that can hold threads.
func (g *Guild) ThreadParent(id snowflake.ID) (ThreadParent, bool) {
	channel, ok := g.Channels.Get(id)
	if !ok {
		return nil, false
	}
	parent, ok := channel.(ThreadParent)
	return parent, ok
}
