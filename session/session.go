package session

import (
	"github.com/concord-chat/concord/cache"
	"github.com/concord-chat/concord/discord"
	"github.com/disgoorg/snowflake/v2"
)

// Session is the in-memory client context channels are materialized
// under. It owns the guild cache the factory resolves against. The
// gateway/REST edge that fills it lives elsewhere; tests and tools can
// fill it by hand.
type Session struct {
	guilds *cache.Cache[snowflake.ID, *discord.Guild]
}

func New() *Session {
	return &Session{
		guilds: cache.New[snowflake.ID, *discord.Guild](),
	}
}

// AddGuild registers guild for lookup, overwriting any previous entry
// under the same ID.
func (s *Session) AddGuild(guild *discord.Guild) {
	s.guilds.Set(guild.ID, guild)
}

func (s *Session) RemoveGuild(id snowflake.ID) {
	s.guilds.Delete(id)
}

func (s *Session) Guild(id snowflake.ID) (*discord.Guild, bool) {
	return s.guilds.Get(id)
}

// CreateChannel materializes a channel payload against this session's
// guild cache.
func (s *Session) CreateChannel(data discord.ChannelData, opts ...discord.CreateOption) (discord.Channel, bool) {
	return discord.CreateChannel(s, data, nil, opts...)
}
