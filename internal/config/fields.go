package config

// Keys shared by environment variables and configuration files.
const (
	KeyClientToken          = "CLIENT_TOKEN"
	KeyClientSecret         = "CLIENT_SECRET"
	KeyBotToken             = "BOT_TOKEN"
	KeyBotPrefix            = "BOT_PREFIX"
	KeyBotOnly              = "BOT_ONLY"
	KeyStartupLogChannelIDs = "STARTUP_LOG_CHANNEL_IDS"
	KeyErrorLogChannelIDs   = "ERROR_LOG_CHANNEL_IDS"
	KeyReplURL              = "REPL_URL"
	KeyGitHubURL            = "GITHUB_URL"
	KeyAPIURL               = "API_URL"
	KeyAPIKey               = "API_KEY"
	KeySiteURL              = "SITE_URL"
	KeyDocsURL              = "DOCS_URL"
	KeyAllowBotInputIDs     = "ALLOW_BOT_INPUT_IDS"
)

// fieldDef declares how one key is resolved and where the result goes.
// A nil def makes the field required.
type fieldDef struct {
	key    string
	kind   Kind
	def    any
	assign func(s *BotSecrets, value any) error
}

func (f fieldDef) required() bool {
	return f.def == nil
}

func assignString(pick func(*BotSecrets) *Field[string]) func(*BotSecrets, any) error {
	return func(s *BotSecrets, value any) error {
		return pick(s).Set(value.(string))
	}
}

func assignBool(pick func(*BotSecrets) *Field[bool]) func(*BotSecrets, any) error {
	return func(s *BotSecrets, value any) error {
		return pick(s).Set(value.(bool))
	}
}

func assignIDs(pick func(*BotSecrets) *Field[[]int64]) func(*BotSecrets, any) error {
	return func(s *BotSecrets, value any) error {
		return pick(s).Set(value.([]int64))
	}
}

// fieldDefs lists every field in resolution order.
var fieldDefs = []fieldDef{
	{
		key:    KeyClientToken,
		kind:   KindString,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.ClientToken }),
	},
	{
		key:    KeyClientSecret,
		kind:   KindString,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.ClientSecret }),
	},
	{
		key:    KeyBotToken,
		kind:   KindString,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.BotToken }),
	},
	{
		key:    KeyBotPrefix,
		kind:   KindString,
		def:    DefaultBotPrefix,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.BotPrefix }),
	},
	{
		key:    KeyBotOnly,
		kind:   KindBool,
		def:    DefaultBotOnly,
		assign: assignBool(func(s *BotSecrets) *Field[bool] { return s.BotOnly }),
	},
	{
		key:    KeyStartupLogChannelIDs,
		kind:   KindIntList,
		assign: assignIDs(func(s *BotSecrets) *Field[[]int64] { return s.StartupLogChannelIDs }),
	},
	{
		key:    KeyErrorLogChannelIDs,
		kind:   KindIntList,
		assign: assignIDs(func(s *BotSecrets) *Field[[]int64] { return s.ErrorLogChannelIDs }),
	},
	{
		key:    KeyReplURL,
		kind:   KindString,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.ReplURL }),
	},
	{
		key:    KeyGitHubURL,
		kind:   KindString,
		def:    DefaultGitHubURL,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.GitHubURL }),
	},
	{
		key:    KeyAPIURL,
		kind:   KindString,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.APIURL }),
	},
	{
		key:    KeyAPIKey,
		kind:   KindString,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.APIKey }),
	},
	{
		key:    KeySiteURL,
		kind:   KindString,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.SiteURL }),
	},
	{
		key:    KeyDocsURL,
		kind:   KindString,
		assign: assignString(func(s *BotSecrets) *Field[string] { return s.DocsURL }),
	},
	{
		key:    KeyAllowBotInputIDs,
		kind:   KindIntList,
		assign: assignIDs(func(s *BotSecrets) *Field[[]int64] { return s.AllowBotInputIDs }),
	},
}

// Keys returns every configuration key in resolution order.
func Keys() []string {
	keys := make([]string, len(fieldDefs))
	for i, f := range fieldDefs {
		keys[i] = f.key
	}
	return keys
}
