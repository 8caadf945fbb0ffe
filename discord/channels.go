package discord

import (
	"time"

	"github.com/concord-chat/concord/cache"
	"github.com/disgoorg/snowflake/v2"
)

// Channel is the least common surface of every materialized variant.
// CreatedAt comes from the timestamp embedded in the snowflake, so it
// needs no extra payload field.
type Channel interface {
	ID() snowflake.ID
	Type() ChannelType
	Name() string
	CreatedAt() time.Time
}

// ThreadParent is a channel that owns a thread cache. Text,
// announcement, forum and media channels qualify.
type ThreadParent interface {
	Channel
	Threads() *cache.Cache[snowflake.ID, Channel]
}

// GuildThread is one of the three thread variants. ParentID reports the
// channel the thread hangs under, comma-ok because partial payloads may
// omit it.
type GuildThread interface {
	Channel
	ParentID() (snowflake.ID, bool)
}

type channelBase struct {
	client Client
	id     snowflake.ID
	typ    ChannelType
	name   string
}

func newChannelBase(client Client, typ ChannelType, data ChannelData) channelBase {
	base := channelBase{client: client, id: data.ID, typ: typ}
	if data.Name != nil {
		base.name = *data.Name
	}
	return base
}

func (c channelBase) ID() snowflake.ID     { return c.id }
func (c channelBase) Type() ChannelType    { return c.typ }
func (c channelBase) Name() string         { return c.name }
func (c channelBase) CreatedAt() time.Time { return c.id.Time() }

type TextChannel struct {
	channelBase
	Topic            *string
	NSFW             bool
	Position         *int
	RateLimitPerUser *int
	CategoryID       *snowflake.ID
	LastMessageID    *snowflake.ID
	threads          *cache.Cache[snowflake.ID, Channel]
}

func newTextChannel(client Client, data ChannelData) *TextChannel {
	return &TextChannel{
		channelBase:      newChannelBase(client, ChannelTypeGuildText, data),
		Topic:            data.Topic,
		NSFW:             data.NSFW != nil && *data.NSFW,
		Position:         data.Position,
		RateLimitPerUser: data.RateLimitPerUser,
		CategoryID:       data.ParentID,
		LastMessageID:    data.LastMessageID,
		threads:          cache.New[snowflake.ID, Channel](),
	}
}

func (c *TextChannel) Threads() *cache.Cache[snowflake.ID, Channel] { return c.threads }

type VoiceChannel struct {
	channelBase
	Bitrate    *int
	UserLimit  *int
	Position   *int
	CategoryID *snowflake.ID
}

func newVoiceChannel(client Client, data ChannelData) *VoiceChannel {
	return &VoiceChannel{
		channelBase: newChannelBase(client, ChannelTypeGuildVoice, data),
		Bitrate:     data.Bitrate,
		UserLimit:   data.UserLimit,
		Position:    data.Position,
		CategoryID:  data.ParentID,
	}
}

type CategoryChannel struct {
	channelBase
	Position *int
}

func newCategoryChannel(client Client, data ChannelData) *CategoryChannel {
	return &CategoryChannel{
		channelBase: newChannelBase(client, ChannelTypeGuildCategory, data),
		Position:    data.Position,
	}
}

type AnnouncementChannel struct {
	channelBase
	Topic         *string
	NSFW          bool
	Position      *int
	CategoryID    *snowflake.ID
	LastMessageID *snowflake.ID
	threads       *cache.Cache[snowflake.ID, Channel]
}

func newAnnouncementChannel(client Client, data ChannelData) *AnnouncementChannel {
	return &AnnouncementChannel{
		channelBase:   newChannelBase(client, ChannelTypeGuildAnnouncement, data),
		Topic:         data.Topic,
		NSFW:          data.NSFW != nil && *data.NSFW,
		Position:      data.Position,
		CategoryID:    data.ParentID,
		LastMessageID: data.LastMessageID,
		threads:       cache.New[snowflake.ID, Channel](),
	}
}

func (c *AnnouncementChannel) Threads() *cache.Cache[snowflake.ID, Channel] { return c.threads }

type StageChannel struct {
	channelBase
	Bitrate    *int
	UserLimit  *int
	Position   *int
	CategoryID *snowflake.ID
}

func newStageChannel(client Client, data ChannelData) *StageChannel {
	return &StageChannel{
		channelBase: newChannelBase(client, ChannelTypeGuildStageVoice, data),
		Bitrate:     data.Bitrate,
		UserLimit:   data.UserLimit,
		Position:    data.Position,
		CategoryID:  data.ParentID,
	}
}

type DirectoryChannel struct {
	channelBase
	Position *int
}

func newDirectoryChannel(client Client, data ChannelData) *DirectoryChannel {
	return &DirectoryChannel{
		channelBase: newChannelBase(client, ChannelTypeGuildDirectory, data),
		Position:    data.Position,
	}
}

// forumFields is what forum and media channels share beyond the base:
// the tag and default-reaction sub-schemas, carried in application
// shape after transform.
type forumFields struct {
	Topic           *string
	NSFW            bool
	CategoryID      *snowflake.ID
	AvailableTags   []ForumTag
	DefaultReaction *DefaultReaction
}

func newForumFields(data ChannelData) forumFields {
	fields := forumFields{
		Topic:      data.Topic,
		NSFW:       data.NSFW != nil && *data.NSFW,
		CategoryID: data.ParentID,
	}
	for _, tag := range data.AvailableTags {
		fields.AvailableTags = append(fields.AvailableTags, ForumTagFromAPI(tag))
	}
	if data.DefaultReactionEmoji != nil {
		reaction := DefaultReactionFromAPI(*data.DefaultReactionEmoji)
		fields.DefaultReaction = &reaction
	}
	return fields
}

type ForumChannel struct {
	channelBase
	forumFields
	threads *cache.Cache[snowflake.ID, Channel]
}

func newForumChannel(client Client, data ChannelData) *ForumChannel {
	return &ForumChannel{
		channelBase: newChannelBase(client, ChannelTypeGuildForum, data),
		forumFields: newForumFields(data),
		threads:     cache.New[snowflake.ID, Channel](),
	}
}

func (c *ForumChannel) Threads() *cache.Cache[snowflake.ID, Channel] { return c.threads }

type MediaChannel struct {
	channelBase
	forumFields
	threads *cache.Cache[snowflake.ID, Channel]
}

func newMediaChannel(client Client, data ChannelData) *MediaChannel {
	return &MediaChannel{
		channelBase: newChannelBase(client, ChannelTypeGuildMedia, data),
		forumFields: newForumFields(data),
		threads:     cache.New[snowflake.ID, Channel](),
	}
}

func (c *MediaChannel) Threads() *cache.Cache[snowflake.ID, Channel] { return c.threads }

type threadBase struct {
	channelBase
	Metadata         *ThreadMetadata
	OwnerID          *snowflake.ID
	RateLimitPerUser *int
	LastMessageID    *snowflake.ID
	parentID         *snowflake.ID
}

func newThreadBase(client Client, typ ChannelType, data ChannelData) threadBase {
	return threadBase{
		channelBase:      newChannelBase(client, typ, data),
		Metadata:         data.ThreadMetadata,
		OwnerID:          data.OwnerID,
		RateLimitPerUser: data.RateLimitPerUser,
		LastMessageID:    data.LastMessageID,
		parentID:         data.ParentID,
	}
}

func (t threadBase) ParentID() (snowflake.ID, bool) {
	if t.parentID == nil {
		return 0, false
	}
	return *t.parentID, true
}

type AnnouncementThread struct{ threadBase }

func newAnnouncementThread(client Client, data ChannelData) *AnnouncementThread {
	return &AnnouncementThread{newThreadBase(client, ChannelTypeAnnouncementThread, data)}
}

type PublicThread struct{ threadBase }

func newPublicThread(client Client, data ChannelData) *PublicThread {
	return &PublicThread{newThreadBase(client, ChannelTypePublicThread, data)}
}

type PrivateThread struct{ threadBase }

func newPrivateThread(client Client, data ChannelData) *PrivateThread {
	return &PrivateThread{newThreadBase(client, ChannelTypePrivateThread, data)}
}

type DMChannel struct {
	channelBase
	Recipients    []User
	LastMessageID *snowflake.ID
}

func newDMChannel(client Client, data ChannelData) *DMChannel {
	return &DMChannel{
		channelBase:   newChannelBase(client, ChannelTypeDM, data),
		Recipients:    data.Recipients,
		LastMessageID: data.LastMessageID,
	}
}

// GroupDMChannel is only ever partially hydrated: group DM payloads
// reach a bot through mentions, not through its own membership.
type GroupDMChannel struct {
	channelBase
	Recipients []User
	OwnerID    *snowflake.ID
	Icon       *string
}

func newGroupDMChannel(client Client, data ChannelData) *GroupDMChannel {
	return &GroupDMChannel{
		channelBase: newChannelBase(client, ChannelTypeGroupDM, data),
		Recipients:  data.Recipients,
		OwnerID:     data.OwnerID,
		Icon:        data.Icon,
	}
}
