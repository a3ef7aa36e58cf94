package audit

import (
	"sort"

	"github.com/rs/zerolog"
)

// Logger provides structured audit logging for account business events
type Logger struct {
	log zerolog.Logger
}

// New creates a new audit logger
func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// Record logs one audit event. Failed logins are logged at warn level.
// Its signature matches the hook accepted by user.Service.WithAudit.
func (l *Logger) Record(action string, fields map[string]string) {
	ev := l.log.Info()
	if action == "login_failed" {
		ev = l.log.Warn()
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ev = ev.Str("action", action)
	for _, k := range keys {
		v := fields[k]
		if k == "email" {
			v = MaskEmail(v)
		}
		ev = ev.Str(k, v)
	}
	ev.Msg(message(action))
}

func message(action string) string {
	switch action {
	case "user_registered":
		return "User registered"
	case "login_success":
		return "User logged in successfully"
	case "login_failed":
		return "Login attempt failed"
	default:
		return action
	}
}

// MaskEmail partially masks email for privacy in logs
func MaskEmail(email string) string {
	if len(email) < 5 {
		return "***"
	}
	// Show first 2 chars and domain
	at := 0
	for i, c := range email {
		if c == '@' {
			at = i
			break
		}
	}
	if at < 2 {
		return email[:1] + "***" + email[at:]
	}
	return email[:2] + "***" + email[at:]
}
