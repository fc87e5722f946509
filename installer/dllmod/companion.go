package dllmod

import (
	"fmt"
	"os"

	"github.com/itchio/modkit/installer"
	"github.com/skratchdot/open-golang/open"
)

// DefaultCompanionURL is where users can grab Hacknet Pathfinder,
// the mod loader that dll mods need to run.
const DefaultCompanionURL = "https://github.com/Arkhist/Hacknet-Pathfinder/releases"

const companionMissingID = "companion-tool-missing"

// CheckCompanion posts an advisory if the companion tool isn't found
// at its recorded location. It never fails: whatever goes wrong while
// looking only changes what the advisory says.
func CheckCompanion(params *installer.InstallParams) {
	consumer := params.GetConsumer()

	reason := "its location was never recorded"
	if params.CompanionPath != "" {
		stats, err := os.Stat(params.CompanionPath)
		switch {
		case err == nil && !stats.IsDir():
			consumer.Debugf("Found Hacknet Pathfinder at %s", params.CompanionPath)
			return
		case err == nil:
			reason = fmt.Sprintf("%s is a folder", params.CompanionPath)
		case os.IsNotExist(err):
			reason = fmt.Sprintf("%s does not exist", params.CompanionPath)
		default:
			reason = fmt.Sprintf("could not check %s: %v", params.CompanionPath, err)
		}
	}
	consumer.Warnf("Hacknet Pathfinder missing: %s", reason)

	url := params.CompanionURL
	if url == "" {
		url = DefaultCompanionURL
	}

	err := params.Notifications.PostNotification(&installer.Notification{
		ID:       companionMissingID,
		Severity: installer.SeverityWarning,
		Title:    "Hacknet Pathfinder not installed",
		Message:  "This mod needs the Hacknet Pathfinder mod loader to work, but it could not be found (" + reason + ").",
		Actions: []*installer.NotificationAction{
			{
				Title: "Get Hacknet Pathfinder",
				Invoke: func() error {
					return open.Start(url)
				},
			},
		},
	})
	if err != nil {
		consumer.Warnf("Could not post advisory: %v", err)
	}
}
