package discord_test

import (
	"testing"

	"github.com/concord-chat/concord/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalChannelData(t *testing.T) {
	raw := []byte(`{
		"id": "847908927554322436",
		"type": 15,
		"guild_id": "847908927554322432",
		"name": "support",
		"nsfw": false,
		"available_tags": [
			{"id": "1", "name": "help", "moderated": true, "emoji_id": null, "emoji_name": "sos"}
		],
		"default_reaction_emoji": {"emoji_id": "42", "emoji_name": null}
	}`)

	data, err := discord.UnmarshalChannelData(raw)
	require.NoError(t, err)

	assert.Equal(t, snowflake.ID(847908927554322436), data.ID)
	assert.Equal(t, discord.ChannelTypeGuildForum, data.Type)
	require.NotNil(t, data.GuildID)
	assert.Equal(t, snowflake.ID(847908927554322432), *data.GuildID)
	require.Len(t, data.AvailableTags, 1)
	assert.Nil(t, data.AvailableTags[0].EmojiID)
	require.NotNil(t, data.AvailableTags[0].EmojiName)
	assert.Equal(t, "sos", *data.AvailableTags[0].EmojiName)
	require.NotNil(t, data.DefaultReactionEmoji)
	require.NotNil(t, data.DefaultReactionEmoji.EmojiID)
	assert.Equal(t, snowflake.ID(42), *data.DefaultReactionEmoji.EmojiID)
}

func TestUnmarshalChannelDataRejectsGarbage(t *testing.T) {
	_, err := discord.UnmarshalChannelData([]byte(`{"id": [}`))
	assert.Error(t, err)
}

func TestChannelDataFrom(t *testing.T) {
	record := map[string]any{
		"id":        "847908927554322436",
		"type":      float64(11),
		"guild_id":  "847908927554322432",
		"name":      "weekly sync",
		"parent_id": "847908927554322440",
		"thread_metadata": map[string]any{
			"archived":              false,
			"auto_archive_duration": float64(1440),
			"locked":                false,
		},
	}

	data, err := discord.ChannelDataFrom(record)
	require.NoError(t, err)

	assert.Equal(t, snowflake.ID(847908927554322436), data.ID)
	assert.Equal(t, discord.ChannelTypePublicThread, data.Type)
	require.NotNil(t, data.GuildID)
	assert.Equal(t, snowflake.ID(847908927554322432), *data.GuildID)
	require.NotNil(t, data.ParentID)
	assert.Equal(t, snowflake.ID(847908927554322440), *data.ParentID)
	require.NotNil(t, data.ThreadMetadata)
	assert.Equal(t, 1440, data.ThreadMetadata.AutoArchiveDuration)
}

func TestChannelDataFromBadSnowflake(t *testing.T) {
	_, err := discord.ChannelDataFrom(map[string]any{
		"id":   "not-a-snowflake",
		"type": float64(0),
	})
	assert.Error(t, err)
}

func TestChannelDataFromNumericSnowflake(t *testing.T) {
	// Real snowflakes exceed the 53-bit float64 mantissa, so a numeric
	// ID that large is rejected instead of decoded with missing digits.
	t.Run("imprecise numeric id", func(t *testing.T) {
		_, err := discord.ChannelDataFrom(map[string]any{
			"id":   float64(847908927554322436),
			"type": float64(0),
		})
		assert.Error(t, err)
	})

	t.Run("small numeric id", func(t *testing.T) {
		data, err := discord.ChannelDataFrom(map[string]any{
			"id":   float64(12345),
			"type": float64(1),
		})
		require.NoError(t, err)
		assert.Equal(t, snowflake.ID(12345), data.ID)
	})
}
