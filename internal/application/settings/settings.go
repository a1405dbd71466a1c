// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up        string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down      string `yaml:"down" kong:"help='Down key',default='j,down'"`
	UpPage    string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage  string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Top       string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom    string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open      string `yaml:"open" kong:"help='Expand/collapse or open key',default='enter,l'"`
	Back      string `yaml:"back" kong:"help='Back/close key',default='esc,h'"`
	Quit      string `yaml:"quit" kong:"help='Quit key',default='q'"`
	MoveToTop string `yaml:"move_to_top" kong:"help='Move category to top key',default='t'"`
	LoadMore  string `yaml:"load_more" kong:"help='Add more jokes key',default='m'"`
	Refresh   string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Category string `yaml:"category" kong:"help='Category name color',default='#2642CA'"`
	TopBadge string `yaml:"top_badge" kong:"help='Top badge color',default='#FFAA46'"`
	GoTop    string `yaml:"go_top" kong:"help='Go Top badge color',default='#6AD2FF'"`
	Accent   string `yaml:"accent" kong:"help='Accent color for spinners and borders',default='205'"`
}

// APIConfig defines the joke service settings.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" kong:"help='Joke API base URL',default='https://v2.jokeapi.dev'"`
	Amount         int    `yaml:"amount" kong:"help='Jokes requested per fetch',default='2'"`
	MaxJokes       int    `yaml:"max_jokes" kong:"help='Stop offering more jokes at this many per category (0 = unlimited)',default='6'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds',default='10'"`
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Settings represents the application configuration.
type Settings struct {
	API      APIConfig    `yaml:"api" kong:"embed,prefix='api.'"`
	KeyMap   KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme    ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	LogFile  string       `yaml:"log_file" kong:"help='Diagnostic log file path'"`
	LogLevel string       `yaml:"log_level" kong:"help='Diagnostic log level (debug/info/warn/error)',default='info'"`
}
