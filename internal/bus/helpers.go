package bus

import (
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/clio"
	"github.com/udevtools/udever/event"
)

func Exit() {
	Publish(clio.ExitEvent(false))
}

func ExitWithInterrupt() {
	Publish(clio.ExitEvent(true))
}

func Report(report string) {
	if len(report) == 0 {
		return
	}
	Publish(partybus.Event{
		Type:  event.CLIReport,
		Value: report,
	})
}

func Notify(message string) {
	Publish(partybus.Event{
		Type:  event.CLINotification,
		Value: message,
	})
}

// RuleApplied announces that a rule file has been written and the udev daemon reloaded.
func RuleApplied(fileName string) {
	Publish(partybus.Event{
		Type:  event.RuleApplied,
		Value: fileName,
	})
}

// RuleDeleted announces that a managed rule file has been removed.
func RuleDeleted(fileName string) {
	Publish(partybus.Event{
		Type:  event.RuleDeleted,
		Value: fileName,
	})
}
