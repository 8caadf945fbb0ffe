package discord

import (
	"github.com/disgoorg/snowflake/v2"
)

// The wire encoding flattens emoji references into an emoji_id/emoji_name
// pair; the application encoding nests them. The four transforms below
// are pure field remappings and exact inverses of each other, with one
// normalization: a wire tag whose pair is wholly unset and one whose
// keys are absent both map to a nil Emoji.

// Emoji is the application-facing emoji reference. At most one of a
// custom emoji ID or a unicode name is meaningful, but the transforms
// carry both untouched.
type Emoji struct {
	ID   *snowflake.ID `json:"id"`
	Name *string       `json:"name"`
}

// ForumTag is the application-facing shape of a forum tag.
type ForumTag struct {
	ID        snowflake.ID `json:"id"`
	Name      string       `json:"name"`
	Moderated bool         `json:"moderated"`
	Emoji     *Emoji       `json:"emoji"`
}

// APIForumTag is the wire shape of a forum tag.
type APIForumTag struct {
	ID        snowflake.ID  `json:"id" mapstructure:"id"`
	Name      string        `json:"name" mapstructure:"name"`
	Moderated bool          `json:"moderated" mapstructure:"moderated"`
	EmojiID   *snowflake.ID `json:"emoji_id" mapstructure:"emoji_id"`
	EmojiName *string       `json:"emoji_name" mapstructure:"emoji_name"`
}

// DefaultReaction is the application-facing default-reaction emoji.
type DefaultReaction struct {
	ID   *snowflake.ID `json:"id"`
	Name *string       `json:"name"`
}

// APIDefaultReaction is the wire shape of a default-reaction emoji.
type APIDefaultReaction struct {
	EmojiID   *snowflake.ID `json:"emoji_id" mapstructure:"emoji_id"`
	EmojiName *string       `json:"emoji_name" mapstructure:"emoji_name"`
}

// ForumTagFromAPI converts a wire forum tag into the application shape.
// Emoji is non-nil iff at least one of the wire pair is set.
func ForumTagFromAPI(tag APIForumTag) ForumTag {
	var emoji *Emoji
	if tag.EmojiID != nil || tag.EmojiName != nil {
		emoji = &Emoji{ID: tag.EmojiID, Name: tag.EmojiName}
	}
	return ForumTag{
		ID:        tag.ID,
		Name:      tag.Name,
		Moderated: tag.Moderated,
		Emoji:     emoji,
	}
}

// ForumTagToAPI converts an application forum tag back to the wire
// shape. A nil Emoji flattens to a nil/nil pair.
func ForumTagToAPI(tag ForumTag) APIForumTag {
	api := APIForumTag{
		ID:        tag.ID,
		Name:      tag.Name,
		Moderated: tag.Moderated,
	}
	if tag.Emoji != nil {
		api.EmojiID = tag.Emoji.ID
		api.EmojiName = tag.Emoji.Name
	}
	return api
}

// DefaultReactionFromAPI is a pure rename of the wire pair; nothing is
// collapsed.
func DefaultReactionFromAPI(reaction APIDefaultReaction) DefaultReaction {
	return DefaultReaction{
		ID:   reaction.EmojiID,
		Name: reaction.EmojiName,
	}
}

// DefaultReactionToAPI is the exact inverse of DefaultReactionFromAPI.
func DefaultReactionToAPI(reaction DefaultReaction) APIDefaultReaction {
	return APIDefaultReaction{
		EmojiID:   reaction.ID,
		EmojiName: reaction.Name,
	}
}
