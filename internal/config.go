package internal

import "time"

type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL,default=http://localhost:5000"`
	SocketURL      string        `env:"SOCKET_URL,default=ws://localhost:5000/socket"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=15s"`
	TypingIdle     time.Duration `env:"TYPING_IDLE_TIMEOUT,default=2s"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES,default=10485760"`
}
