package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

type ModuleMask uint64
type Module uint

const (
	ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF
)

// One module per stage of the generation pass. Debug logging is off by
// default and enabled per module from the command line.
const (
	ModTable Module = iota + 1 // opcode table parsing
	ModGen                     // dispatch code emission
	ModCfg                     // configuration

	endStandardMods
)

var modCount = endStandardMods

var modDebugMask ModuleMask = 0

var disabled = false

var modNames = []string{
	"<error>", "table", "gen", "cfg",
}

func NewModule(name string) Module {
	mod := modCount
	modCount++
	modNames = append(modNames, name)
	return mod
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if s == name {
			return Module(idx), true
		}
	}
	return Module(0xFFFFFFFF), false
}

func ModuleNames() []string {
	return append([]string(nil), modNames[1:]...)
}

func EnableDebugModules(mask ModuleMask) {
	modDebugMask |= mask
	logrus.SetLevel(logrus.DebugLevel)
}

func DisableDebugModules(mask ModuleMask) {
	modDebugMask &^= mask
}

// Disable turns off all logging, whatever the level.
func Disable() {
	disabled = true
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Enabled(level Level) bool {
	if disabled {
		return false
	}
	return level <= WarnLevel || modDebugMask&mod.Mask() != 0
}

// printf-like family, forwarded to a fresh entry.

func (mod Module) Debugf(format string, args ...any) {
	Entry{mod: mod}.Debugf(format, args...)
}

func (mod Module) Infof(format string, args ...any) {
	Entry{mod: mod}.Infof(format, args...)
}

func (mod Module) Warnf(format string, args ...any) {
	Entry{mod: mod}.Warnf(format, args...)
}

func (mod Module) Errorf(format string, args ...any) {
	Entry{mod: mod}.Errorf(format, args...)
}

func (mod Module) Fatalf(format string, args ...any) {
	Entry{mod: mod}.Fatalf(format, args...)
}

func (mod Module) WithField(key string, value any) Entry {
	return Entry{mod: mod}.WithField(key, value)
}
