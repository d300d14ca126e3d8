// Package config provides local configuration for the delaytext demo.
//
// Settings live in the working directory's .delaytext/ folder:
//
//	.delaytext/
//	├── config.toml        # Main configuration
//	└── .gitignore
//
// The config.toml file holds the debounce policy and display options:
//
//	delay_timeout_ms = 500
//	min_length = 3
//	placeholder = "Type to filter..."
//	char_limit = 0
//	theme = "ember"
//	word_list = ""
//	debug = false
//
// String values may reference environment variables using $VAR or ${VAR}:
//
//	word_list = "${HOME}/words.txt"
//
// Example usage:
//
//	manager := config.NewManager(".")
//	if err := manager.Load(); err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := manager.Get()
//	fmt.Println("delay:", cfg.Delay())
//
//	// Update a setting
//	manager.Set("min_length", "2")
package config
