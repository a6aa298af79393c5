package pulselog

// Per-level entry points. Each returns the reload error from Log, if any.
// The f and Func variants defer formatting until the level is known to be enabled.

func (l *Logger) Emergency(msg string) error { return l.Log(LevelEmergency, Text(msg)) }
func (l *Logger) Emergencyf(format string, args ...any) error {
	return l.Log(LevelEmergency, Lazyf(format, args...))
}
func (l *Logger) EmergencyFunc(fn func() string) error { return l.Log(LevelEmergency, Lazy(fn)) }

func (l *Logger) Alert(msg string) error { return l.Log(LevelAlert, Text(msg)) }
func (l *Logger) Alertf(format string, args ...any) error {
	return l.Log(LevelAlert, Lazyf(format, args...))
}
func (l *Logger) AlertFunc(fn func() string) error { return l.Log(LevelAlert, Lazy(fn)) }

func (l *Logger) Critical(msg string) error { return l.Log(LevelCritical, Text(msg)) }
func (l *Logger) Criticalf(format string, args ...any) error {
	return l.Log(LevelCritical, Lazyf(format, args...))
}
func (l *Logger) CriticalFunc(fn func() string) error { return l.Log(LevelCritical, Lazy(fn)) }

func (l *Logger) Error(msg string) error { return l.Log(LevelError, Text(msg)) }
func (l *Logger) Errorf(format string, args ...any) error {
	return l.Log(LevelError, Lazyf(format, args...))
}
func (l *Logger) ErrorFunc(fn func() string) error { return l.Log(LevelError, Lazy(fn)) }

func (l *Logger) Warning(msg string) error { return l.Log(LevelWarning, Text(msg)) }
func (l *Logger) Warningf(format string, args ...any) error {
	return l.Log(LevelWarning, Lazyf(format, args...))
}
func (l *Logger) WarningFunc(fn func() string) error { return l.Log(LevelWarning, Lazy(fn)) }

func (l *Logger) Notice(msg string) error { return l.Log(LevelNotice, Text(msg)) }
func (l *Logger) Noticef(format string, args ...any) error {
	return l.Log(LevelNotice, Lazyf(format, args...))
}
func (l *Logger) NoticeFunc(fn func() string) error { return l.Log(LevelNotice, Lazy(fn)) }

func (l *Logger) Info(msg string) error { return l.Log(LevelInfo, Text(msg)) }
func (l *Logger) Infof(format string, args ...any) error {
	return l.Log(LevelInfo, Lazyf(format, args...))
}
func (l *Logger) InfoFunc(fn func() string) error { return l.Log(LevelInfo, Lazy(fn)) }

func (l *Logger) Debug(msg string) error { return l.Log(LevelDebug, Text(msg)) }
func (l *Logger) Debugf(format string, args ...any) error {
	return l.Log(LevelDebug, Lazyf(format, args...))
}
func (l *Logger) DebugFunc(fn func() string) error { return l.Log(LevelDebug, Lazy(fn)) }

// Warn is an alias of Warning.
func (l *Logger) Warn(msg string) error { return l.Warning(msg) }
func (l *Logger) Warnf(format string, args ...any) error {
	return l.Log(LevelWarning, Lazyf(format, args...))
}
func (l *Logger) WarnFunc(fn func() string) error { return l.WarningFunc(fn) }

// Fatal is an alias of Emergency. It does not exit the process.
func (l *Logger) Fatal(msg string) error { return l.Emergency(msg) }
func (l *Logger) Fatalf(format string, args ...any) error {
	return l.Log(LevelEmergency, Lazyf(format, args...))
}
func (l *Logger) FatalFunc(fn func() string) error { return l.EmergencyFunc(fn) }

func (l *Logger) IsEmergencyEnabled() bool { return l.Enabled(LevelEmergency) }
func (l *Logger) IsAlertEnabled() bool     { return l.Enabled(LevelAlert) }
func (l *Logger) IsCriticalEnabled() bool  { return l.Enabled(LevelCritical) }
func (l *Logger) IsErrorEnabled() bool     { return l.Enabled(LevelError) }
func (l *Logger) IsWarningEnabled() bool   { return l.Enabled(LevelWarning) }
func (l *Logger) IsWarnEnabled() bool      { return l.Enabled(LevelWarning) }
func (l *Logger) IsNoticeEnabled() bool    { return l.Enabled(LevelNotice) }
func (l *Logger) IsInfoEnabled() bool      { return l.Enabled(LevelInfo) }
func (l *Logger) IsDebugEnabled() bool     { return l.Enabled(LevelDebug) }
func (l *Logger) IsFatalEnabled() bool     { return l.Enabled(LevelEmergency) }
