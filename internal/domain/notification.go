package domain

// NotificationType classifies an outgoing notification.
type NotificationType string

const (
	NotificationPrayer   NotificationType = "prayer"
	NotificationMedicine NotificationType = "medicine"
)

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsPrayer() bool {
	return t == NotificationPrayer
}

func (t NotificationType) IsMedicine() bool {
	return t == NotificationMedicine
}

// Notification is the payload handed to the push transport.
type Notification struct {
	Type  NotificationType
	Title string
	Body  string
	Data  map[string]string
}
