package services

import (
	"fmt"
	"strings"
)

// Notification texts sent to students via the bot. The group link is sent
// without its scheme so the bot renders it as plain text rather than a
// preview card.

func registrationReceivedMessage() string {
	return "You have successfully registered and submitted your internship form. " +
		"Please wait for confirmation from the administrators."
}

func confirmationMessage(curatorName, groupLink string) string {
	msg := fmt.Sprintf("Your internship application has been confirmed! Your curator is %s.", curatorName)
	if groupLink != "" {
		msg += fmt.Sprintf(" Join your group: %s.", stripScheme(groupLink))
	}
	msg += " When your internship is finished, submit your report through the system."
	return msg
}

func documentSignedMessage(document string) string {
	return fmt.Sprintf("Your %s has been signed. You can pick it up at the administration office.", document)
}

func applicationRejectedMessage() string {
	return "Your internship application has been rejected and removed. " +
		"If this was a mistake, please register again."
}

// stripScheme drops an https:// prefix from a link.
func stripScheme(link string) string {
	return strings.TrimPrefix(link, "https://")
}
