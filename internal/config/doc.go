// Package config loads the bot's secrets and settings.
//
// Values are resolved per key from three layers, highest precedence first:
//  1. Environment variables (exact uppercase key, e.g. CLIENT_TOKEN)
//  2. Configuration files passed to [Loader.Load], rightmost file wins
//  3. Built-in defaults
//
// Environment values are text and are coerced by the field's [Kind]; list
// values are comma separated ("123, 456"). File values are JSON (comments
// allowed) or YAML objects using the same keys.
//
// Every field of [BotSecrets] is write-once. After a successful load the
// store is read-only; [BotSecrets.Settings] returns a plain snapshot for the
// rest of the process.
package config
