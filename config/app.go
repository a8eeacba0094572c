package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}
