// Package sms contains the wire-level pieces of the SMS gateway: the command
// grammar, the free-text parser and phone number normalization.
package sms

import "strings"

// Command is the first token of an inbound SMS, uppercased.
type Command string

const (
	CommandCollect        Command = "COLLECT"
	CommandRegisterFarmer Command = "REGISTER_FARMER"
	CommandStatus         Command = "STATUS"
	CommandHelp           Command = "HELP"
)

// commands lists every known command in the order shown to users.
var commands = []Command{
	CommandCollect,
	CommandRegisterFarmer,
	CommandStatus,
	CommandHelp,
}

// Lookup resolves an uppercased command name. ok is false for anything
// outside the known set.
func Lookup(name string) (Command, bool) {
	for _, cmd := range commands {
		if string(cmd) == name {
			return cmd, true
		}
	}

	return "", false
}

// CommandList returns the known commands joined for help and error messages.
func CommandList() string {
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, string(cmd))
	}

	return strings.Join(names, ", ")
}
