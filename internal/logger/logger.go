package logger

// Fields carries structured log properties
type Fields map[string]interface{}

// Logger is the logging contract services depend on; production code
// wires the zerolog implementation, tests use NullLogger.
type Logger interface {
	Info(message string, fields Fields)
	Error(err error, fields Fields)
	Fatal(err error, fields Fields)
	Debug(message string, fields Fields)
	SetLevel(level Level)
}

type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelDebug:
		return "DEBUG"
	default:
		return ""
	}
}

// ParseLevel maps a config string to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	case "off":
		return LevelOff
	default:
		return LevelInfo
	}
}
