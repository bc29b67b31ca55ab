package config

type CorsConfig interface {
	GetAllowedOrigins() []string
	GetAllowedMethods() []string
	GetAllowedHeaders() []string
}

type Cors struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
}

var _ CorsConfig = Cors{}

func (c Cors) GetAllowedOrigins() []string {
	return append([]string(nil), c.AllowedOrigins...)
}

func (c Cors) GetAllowedMethods() []string {
	return append([]string(nil), c.AllowedMethods...)
}

func (c Cors) GetAllowedHeaders() []string {
	return append([]string(nil), c.AllowedHeaders...)
}
