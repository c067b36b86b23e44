// Package cli implements the clembot command line.
//
// Commands:
//
//	clembot run     load secrets and start the bot
//	clembot check   load secrets and print the source of every key
//	clembot version print build information
//
// Secrets files come from repeated --secrets flags or, when absent, from
// CLEMBOT_SECRETS_FILES (comma separated).
package cli
