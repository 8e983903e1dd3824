package config

import (
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"

	"github.com/tranvictor/jarvis-tokens/search"
	"github.com/tranvictor/jarvis-tokens/tokens"
)

const TOKENS_FILE_VAR = "JARVIS_TOKENS_FILE"

var (
	Network     string
	TokensFile  string
	QuietPeriod time.Duration = search.DefaultQuietPeriod

	FlatList bool
	UseIndex bool
	To       string
)

// TokensFilePath returns the token file to use: the --tokens-file flag, then
// the JARVIS_TOKENS_FILE env var, then ~/.jarvis/tokens.json. A leading ~ is
// expanded when the home directory can be found.
func TokensFilePath() string {
	path := strings.TrimSpace(TokensFile)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(TOKENS_FILE_VAR))
	}
	if path == "" {
		path = tokens.DefaultTokensPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
