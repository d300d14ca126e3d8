package app

import (
	"fmt"

	"github.com/billie-coop/delaytext/internal/config"
	"github.com/billie-coop/delaytext/internal/logging"
)

// App holds the services behind the TUI
type App struct {
	Config *config.Manager
	Words  *WordIndex
}

// New builds the word index named by the loaded configuration
func New(cfgManager *config.Manager) (*App, error) {
	words, err := LoadWordIndex(cfgManager.Get().WordList)
	if err != nil {
		return nil, fmt.Errorf("failed to build word index: %w", err)
	}
	logging.L().Infow("word index loaded", "words", words.Len(), "source", cfgManager.Get().WordList)

	return &App{
		Config: cfgManager,
		Words:  words,
	}, nil
}
