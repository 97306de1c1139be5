package event

import "github.com/wagoodman/go-partybus"

const (
	typePrefix    = "udever"
	cliTypePrefix = typePrefix + "-cli"

	// Events from the udever library

	// RuleApplied is a partybus event that occurs when a rule file has been written and the daemon reloaded
	RuleApplied partybus.EventType = typePrefix + "-rule-applied"

	// RuleDeleted is a partybus event that occurs when a managed rule file has been removed
	RuleDeleted partybus.EventType = typePrefix + "-rule-deleted"

	// Events exclusively for the CLI

	// CLIReport is a partybus event that occurs when the cli is ready to generate a report
	CLIReport partybus.EventType = cliTypePrefix + "-report"

	// CLINotification is a partybus event that occurs when auxiliary information is ready for presentation to stderr
	CLINotification partybus.EventType = cliTypePrefix + "-notification"
)
