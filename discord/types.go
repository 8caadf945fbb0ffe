package discord

import (
	"github.com/disgoorg/snowflake/v2"
)

// ChannelType is the wire discriminator that selects which concrete
// channel variant a payload describes. Values follow the platform's
// numbering, gaps included.
type ChannelType int

const (
	ChannelTypeGuildText          ChannelType = 0
	ChannelTypeDM                 ChannelType = 1
	ChannelTypeGuildVoice         ChannelType = 2
	ChannelTypeGroupDM            ChannelType = 3
	ChannelTypeGuildCategory      ChannelType = 4
	ChannelTypeGuildAnnouncement  ChannelType = 5
	ChannelTypeAnnouncementThread ChannelType = 10
	ChannelTypePublicThread       ChannelType = 11
	ChannelTypePrivateThread      ChannelType = 12
	ChannelTypeGuildStageVoice    ChannelType = 13
	ChannelTypeGuildDirectory     ChannelType = 14
	ChannelTypeGuildForum         ChannelType = 15
	ChannelTypeGuildMedia         ChannelType = 16
)

func (t ChannelType) String() string {
	switch t {
	case ChannelTypeGuildText:
		return "GuildText"
	case ChannelTypeDM:
		return "DM"
	case ChannelTypeGuildVoice:
		return "GuildVoice"
	case ChannelTypeGroupDM:
		return "GroupDM"
	case ChannelTypeGuildCategory:
		return "GuildCategory"
	case ChannelTypeGuildAnnouncement:
		return "GuildAnnouncement"
	case ChannelTypeAnnouncementThread:
		return "AnnouncementThread"
	case ChannelTypePublicThread:
		return "PublicThread"
	case ChannelTypePrivateThread:
		return "PrivateThread"
	case ChannelTypeGuildStageVoice:
		return "GuildStageVoice"
	case ChannelTypeGuildDirectory:
		return "GuildDirectory"
	case ChannelTypeGuildForum:
		return "GuildForum"
	case ChannelTypeGuildMedia:
		return "GuildMedia"
	}
	return "Unknown"
}

// User is the slice of a user record that channel payloads carry in
// their recipients list.
type User struct {
	ID       snowflake.ID `json:"id" mapstructure:"id"`
	Username string       `json:"username" mapstructure:"username"`
}

type ThreadMetadata struct {
	Archived            bool  `json:"archived" mapstructure:"archived"`
	AutoArchiveDuration int   `json:"auto_archive_duration" mapstructure:"auto_archive_duration"`
	Locked              bool  `json:"locked" mapstructure:"locked"`
	Invitable           *bool `json:"invitable,omitempty" mapstructure:"invitable"`
}

// ChannelData is the decoded wire payload for a channel of any kind.
// Only id and type are always present; everything else depends on the
// variant, so optional fields are pointers. The factory reads it, it
// never writes it.
type ChannelData struct {
	ID                   snowflake.ID        `json:"id" mapstructure:"id"`
	Type                 ChannelType         `json:"type" mapstructure:"type"`
	GuildID              *snowflake.ID       `json:"guild_id,omitempty" mapstructure:"guild_id"`
	Name                 *string             `json:"name,omitempty" mapstructure:"name"`
	Topic                *string             `json:"topic,omitempty" mapstructure:"topic"`
	NSFW                 *bool               `json:"nsfw,omitempty" mapstructure:"nsfw"`
	Position             *int                `json:"position,omitempty" mapstructure:"position"`
	Bitrate              *int                `json:"bitrate,omitempty" mapstructure:"bitrate"`
	UserLimit            *int                `json:"user_limit,omitempty" mapstructure:"user_limit"`
	RateLimitPerUser     *int                `json:"rate_limit_per_user,omitempty" mapstructure:"rate_limit_per_user"`
	ParentID             *snowflake.ID       `json:"parent_id,omitempty" mapstructure:"parent_id"`
	LastMessageID        *snowflake.ID       `json:"last_message_id,omitempty" mapstructure:"last_message_id"`
	OwnerID              *snowflake.ID       `json:"owner_id,omitempty" mapstructure:"owner_id"`
	Icon                 *string             `json:"icon,omitempty" mapstructure:"icon"`
	Recipients           []User              `json:"recipients,omitempty" mapstructure:"recipients"`
	ThreadMetadata       *ThreadMetadata     `json:"thread_metadata,omitempty" mapstructure:"thread_metadata"`
	AvailableTags        []APIForumTag       `json:"available_tags,omitempty" mapstructure:"available_tags"`
	DefaultReactionEmoji *APIDefaultReaction `json:"default_reaction_emoji,omitempty" mapstructure:"default_reaction_emoji"`
	Flags                *int                `json:"flags,omitempty" mapstructure:"flags"`
}
