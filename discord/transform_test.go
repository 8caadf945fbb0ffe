package discord_test

import (
	"testing"

	"github.com/concord-chat/concord/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForumTagRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tag  discord.APIForumTag
	}{
		{
			name: "both emoji fields populated",
			tag: discord.APIForumTag{
				ID:        10,
				Name:      "help",
				Moderated: true,
				EmojiID:   idPtr(snowflake.ID(42)),
				EmojiName: strPtr("sos"),
			},
		},
		{
			name: "emoji id only",
			tag:  discord.APIForumTag{ID: 11, Name: "bug", EmojiID: idPtr(snowflake.ID(43))},
		},
		{
			name: "emoji name only",
			tag:  discord.APIForumTag{ID: 12, Name: "idea", EmojiName: strPtr("bulb")},
		},
		{
			name: "no emoji",
			tag:  discord.APIForumTag{ID: 13, Name: "misc", Moderated: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tag, discord.ForumTagToAPI(discord.ForumTagFromAPI(tt.tag)))
		})
	}
}

func TestForumTagEmojiCollapse(t *testing.T) {
	t.Run("nil pair collapses to nil emoji", func(t *testing.T) {
		tag := discord.ForumTagFromAPI(discord.APIForumTag{ID: 1, Name: "misc"})
		assert.Nil(t, tag.Emoji)
	})

	t.Run("single field yields emoji", func(t *testing.T) {
		tag := discord.ForumTagFromAPI(discord.APIForumTag{ID: 1, Name: "misc", EmojiName: strPtr("tada")})
		require.NotNil(t, tag.Emoji)
		assert.Nil(t, tag.Emoji.ID)
		assert.Equal(t, "tada", *tag.Emoji.Name)
	})

	// Both-nil pair and absent keys are the same normalized form after
	// a round trip.
	t.Run("normalized wire form", func(t *testing.T) {
		api := discord.ForumTagToAPI(discord.ForumTagFromAPI(discord.APIForumTag{ID: 1, Name: "misc"}))
		assert.Nil(t, api.EmojiID)
		assert.Nil(t, api.EmojiName)
	})
}

func TestForumTagAppRoundTrip(t *testing.T) {
	tag := discord.ForumTag{
		ID:        20,
		Name:      "showcase",
		Moderated: true,
		Emoji:     &discord.Emoji{ID: idPtr(snowflake.ID(7)), Name: strPtr("star")},
	}
	assert.Equal(t, tag, discord.ForumTagFromAPI(discord.ForumTagToAPI(tag)))
}

func TestDefaultReactionRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		reaction discord.APIDefaultReaction
	}{
		{name: "custom emoji", reaction: discord.APIDefaultReaction{EmojiID: idPtr(snowflake.ID(55))}},
		{name: "unicode emoji", reaction: discord.APIDefaultReaction{EmojiName: strPtr("wave")}},
		{name: "both", reaction: discord.APIDefaultReaction{EmojiID: idPtr(snowflake.ID(55)), EmojiName: strPtr("wave")}},
		{name: "neither", reaction: discord.APIDefaultReaction{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reaction, discord.DefaultReactionToAPI(discord.DefaultReactionFromAPI(tt.reaction)))
		})
	}
}

func TestDefaultReactionIsPureRename(t *testing.T) {
	// No collapse here: a wholly empty reaction stays an empty struct,
	// not a nil.
	reaction := discord.DefaultReactionFromAPI(discord.APIDefaultReaction{})
	assert.Nil(t, reaction.ID)
	assert.Nil(t, reaction.Name)
}
