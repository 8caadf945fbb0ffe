package discord

import (
	"github.com/disgoorg/snowflake/v2"
)

// Client is the session context channels are materialized under. The
// factory only uses it to resolve a guild by ID when no guild was
// supplied; constructors receive it untouched so channel methods can
// reach back into the session later.
type Client interface {
	Guild(id snowflake.ID) (*Guild, bool)
}
