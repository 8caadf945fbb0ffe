package main

import (
	"flag"
	"os"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/concord-chat/concord/discord"
	"github.com/concord-chat/concord/logger/dlog"
	"github.com/concord-chat/concord/session"
	"github.com/disgoorg/snowflake/v2"
)

// Variables used for command line parameters
var (
	GuildID      string
	UnknownGuild bool
)

func init() {
	flag.StringVar(&GuildID, "g", "", "Guild to register the payloads under")
	flag.BoolVar(&UnknownGuild, "u", false, "Materialize guild payloads without a resolvable guild")
	flag.Parse()
}

func main() {
	if err := dlog.Setup("logs", "0 0 * * *"); err != nil {
		dlog.Warn("File logging disabled", "err", err)
	}

	sess := session.New()
	var guild *discord.Guild
	if GuildID != "" {
		id, err := snowflake.Parse(GuildID)
		if err != nil {
			dlog.Error("Invalid guild id", "guildID", GuildID, "err", err)
			os.Exit(1)
		}
		guild = discord.NewGuild(id, "inspect")
		sess.AddGuild(guild)
	}

	var opts []discord.CreateOption
	if UnknownGuild {
		opts = append(opts, discord.WithFromUnknownGuild())
	}

	for _, path := range flag.Args() {
		raw, err := os.ReadFile(path)
		if err != nil {
			dlog.Error("Failed to read payload", "path", path, "err", err)
			continue
		}

		probe, err := simplejson.NewJson(raw)
		if err != nil {
			dlog.Error("Payload is not JSON", "path", path, "err", err)
			continue
		}
		dlog.Info("Read payload",
			"path", path,
			"type", probe.Get("type").MustInt(-1),
			"guildID", probe.Get("guild_id").MustString(""),
		)

		data, err := discord.UnmarshalChannelData(raw)
		if err != nil {
			dlog.Error("Failed to decode payload", "path", path, "err", err)
			continue
		}

		channel, ok := sess.CreateChannel(data, opts...)
		if !ok {
			dlog.Warn("Nothing to materialize", "path", path, "type", data.Type)
			continue
		}
		dlog.Info("Materialized channel",
			"path", path,
			"id", channel.ID(),
			"kind", channel.Type().String(),
			"name", channel.Name(),
		)
	}

	if guild != nil {
		dlog.Info("Guild channel cache", "guildID", guild.ID, "channels", guild.Channels.Len())
		guild.Channels.ForEach(func(id snowflake.ID, channel discord.Channel) {
			dlog.Info("Cached channel", "id", id, "kind", channel.Type().String())
		})
	}
}
