// Package config loads oxtail's TOML configuration.
//
// The file lives at ~/.config/oxtail/config.toml by default and carries the
// backend connection (url, org, token), the default stream to tail, and the
// engine tuning knobs: poll_interval, page_size, and prune_horizon. A
// missing file is not an error; every field has a default suitable for a
// local backend. Durations are Go duration strings ("2s", "1m").
package config
