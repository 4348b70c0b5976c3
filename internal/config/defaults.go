package config

// Default value constants to avoid magic numbers and strings.
const (
	DefaultProfile     = "spring-boot-maven-java"
	DefaultLayout      = "standard"
	DefaultEnforcement = "none"
	DefaultSampleCode  = "minimal"
	DefaultJavaVersion = "21"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// DefaultFileName is the config file name under the user config directory.
	DefaultFileName = "config.yaml"
	// AppDirName is the directory below os.UserConfigDir.
	AppDirName = "moai-starter"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "MOAI_STARTER"
)

// defaultDependencyAliases are shortcuts available without any config file.
var defaultDependencyAliases = map[string]string{
	"actuator":   "org.springframework.boot:spring-boot-starter-actuator",
	"validation": "org.springframework.boot:spring-boot-starter-validation",
	"jpa":        "org.springframework.boot:spring-boot-starter-data-jpa",
	"postgres":   "org.postgresql:postgresql::runtime",
	"h2":         "com.h2database:h2::runtime",
	"lombok":     "org.projectlombok:lombok::provided",
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	aliases := make(map[string]string, len(defaultDependencyAliases))
	for k, v := range defaultDependencyAliases {
		aliases[k] = v
	}
	return &Config{
		Defaults: DefaultsConfig{
			Profile:     DefaultProfile,
			Layout:      DefaultLayout,
			Enforcement: DefaultEnforcement,
			SampleCode:  DefaultSampleCode,
			JavaVersion: DefaultJavaVersion,
		},
		DependencyAliases: aliases,
		Output:            OutputConfig{Archive: true},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
