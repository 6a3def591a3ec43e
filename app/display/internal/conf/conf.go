package conf

type Bootstrap struct {
	Server *Server
	Radar  *Radar
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

type Radar struct {
	Search      *Search      `json:"search"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
}

type Search struct {
	Provider string   `json:"provider"`
	Backend  *Backend `json:"backend"`
	Fixture  *Fixture `json:"fixture"`
}

type Backend struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Fixture struct {
	Path string `json:"path"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}
