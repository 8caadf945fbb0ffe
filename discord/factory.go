package discord

// CreateOption tweaks a single CreateChannel call.
type CreateOption func(*createConfig)

type createConfig struct {
	fromUnknownGuild bool
}

// WithFromUnknownGuild lets a guild-scoped payload materialize even when
// its guild cannot be resolved. Cache registration is suppressed for the
// whole call: an instance built outside a live guild context must leave
// no trace in any cache.
func WithFromUnknownGuild() CreateOption {
	return func(cfg *createConfig) {
		cfg.fromUnknownGuild = true
	}
}

// CreateChannel classifies data, constructs the matching channel variant
// and registers it into the owning caches. guild may be nil; when it is,
// the guild is resolved through client by the payload's guild_id.
//
// The comma-ok false return is not an error. Payloads may describe
// channel kinds this library does not materialize (future discriminator
// values, guild payloads whose guild is not cached); those calls are
// simply nothing to do.
//
// Classification order matters. A payload with no guild_id and no guild
// argument is user-scoped; within that branch a recipients list with any
// non-group-DM discriminator resolves to a DM. That permissiveness is
// deliberate and covered by tests, not an accident to tighten up.
func CreateChannel(client Client, data ChannelData, guild *Guild, opts ...CreateOption) (Channel, bool) {
	var cfg createConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if data.GuildID == nil && guild == nil {
		if (data.Recipients != nil && data.Type != ChannelTypeGroupDM) || data.Type == ChannelTypeDM {
			return newDMChannel(client, data), true
		}
		if data.Type == ChannelTypeGroupDM {
			return newGroupDMChannel(client, data), true
		}
		return nil, false
	}

	if guild == nil {
		guild, _ = client.Guild(*data.GuildID)
	}
	if guild == nil && !cfg.fromUnknownGuild {
		return nil, false
	}

	channel, ok := newGuildChannel(client, data)
	if !ok {
		return nil, false
	}

	if !cfg.fromUnknownGuild {
		for _, register := range registrations(guild, channel) {
			register()
		}
	}
	return channel, true
}

func newGuildChannel(client Client, data ChannelData) (Channel, bool) {
	switch data.Type {
	case ChannelTypeGuildText:
		return newTextChannel(client, data), true
	case ChannelTypeGuildVoice:
		return newVoiceChannel(client, data), true
	case ChannelTypeGuildCategory:
		return newCategoryChannel(client, data), true
	case ChannelTypeGuildAnnouncement:
		return newAnnouncementChannel(client, data), true
	case ChannelTypeAnnouncementThread:
		return newAnnouncementThread(client, data), true
	case ChannelTypePublicThread:
		return newPublicThread(client, data), true
	case ChannelTypePrivateThread:
		return newPrivateThread(client, data), true
	case ChannelTypeGuildStageVoice:
		return newStageChannel(client, data), true
	case ChannelTypeGuildDirectory:
		return newDirectoryChannel(client, data), true
	case ChannelTypeGuildForum:
		return newForumChannel(client, data), true
	case ChannelTypeGuildMedia:
		return newMediaChannel(client, data), true
	}
	return nil, false
}

// registrations collects the cache inserts a freshly built guild channel
// owes, so the caller applies them in one place or not at all. Threads
// land in their parent's thread cache first, then every guild channel
// lands in the guild's channel cache. Inserts overwrite: the factory
// never reuses a previously cached instance.
func registrations(guild *Guild, channel Channel) []func() {
	inserts := make([]func(), 0, 2)
	if thread, ok := channel.(GuildThread); ok {
		if parentID, ok := thread.ParentID(); ok {
			if parent, ok := guild.ThreadParent(parentID); ok {
				inserts = append(inserts, func() {
					parent.Threads().Set(channel.ID(), channel)
				})
			}
		}
	}
	inserts = append(inserts, func() {
		guild.Channels.Set(channel.ID(), channel)
	})
	return inserts
}
