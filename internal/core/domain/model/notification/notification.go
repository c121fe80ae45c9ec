// Package notification provides the Notification entity and the canonical
// message builders for every lifecycle event that fans out to a user.
//
// Notifications are append-only: once written, only the read flag ever
// changes. Writes happen synchronously inside the unit of work of the
// transition that produced them, so a notification exists exactly when its
// triggering transition committed.
package notification

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for notification operations.
var (
	// ErrMessageIsRequired is returned when creating a notification without a message.
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
	// ErrNotificationIsNotConstructed is returned when using an improperly initialized Notification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
)

// Notification is a single message delivered to a user's in-app feed.
type Notification struct {
	// id uniquely identifies the notification
	id kernel.UUID
	// userID references the recipient
	userID kernel.UUID
	// message is the delivered text
	message string
	// isRead marks whether the recipient has seen it
	isRead bool
	// createdAt is the delivery timestamp
	createdAt time.Time
	// guard ensures the notification was properly constructed
	guard guard.ConstructorGuard
}

// NewNotification writes a new unread message for a recipient.
func NewNotification(id kernel.UUID, userID kernel.UUID, message string) (*Notification, error) {
	n := &Notification{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistent storage.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	message string,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		isRead:    isRead,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the recipient's identifier.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// Message returns the delivered text.
func (n *Notification) Message() string {
	return n.message
}

// IsRead reports whether the recipient has marked the notification as read.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// CreatedAt returns the delivery timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flags the notification as seen. Idempotent.
func (n *Notification) MarkRead() {
	n.isRead = true
}

// setID validates and sets the notification's unique identifier.
func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

// setUserID validates and sets the recipient reference.
func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	n.userID = userID
	return nil
}

// setMessage validates and sets the delivered text.
func (n *Notification) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}
	n.message = message
	return nil
}

// Canonical message builders. Keeping the texts here, next to the entity,
// gives every producer a single wording to fan out.

// NewOrderMessage is sent to the maker when a customer places an order.
func NewOrderMessage(orderID kernel.UUID, quantity int, productName string) string {
	return fmt.Sprintf("New order %s: %d × %s", orderID, quantity, productName)
}

// OrderAcceptedMessage is sent to the customer when the maker accepts.
func OrderAcceptedMessage(orderID kernel.UUID) string {
	return fmt.Sprintf("Your order %s was accepted", orderID)
}

// OrderDeliveredMessage is sent to the customer on handover.
func OrderDeliveredMessage(orderID kernel.UUID) string {
	return fmt.Sprintf("Your order %s was delivered", orderID)
}

// PaymentReceivedMessage is sent to the customer when their payment settles.
func PaymentReceivedMessage(orderID kernel.UUID, amount kernel.Money) string {
	return fmt.Sprintf("Payment of %s received for order %s", amount, orderID)
}

// PaymentFailedMessage is sent to the customer when their payment fails.
func PaymentFailedMessage(orderID kernel.UUID) string {
	return fmt.Sprintf("Payment for order %s failed", orderID)
}

// PaymentRefundedMessage is sent to the customer when their payment is refunded.
func PaymentRefundedMessage(orderID kernel.UUID, amount kernel.Money) string {
	return fmt.Sprintf("Payment of %s for order %s was refunded", amount, orderID)
}

// DeliveryAssignedPartnerMessage is sent to the partner taking a delivery.
func DeliveryAssignedPartnerMessage(orderID kernel.UUID) string {
	return fmt.Sprintf("You were assigned to deliver order %s", orderID)
}

// DeliveryAssignedCustomerMessage is sent to the customer when a partner takes their order.
func DeliveryAssignedCustomerMessage(orderID kernel.UUID, partnerName string) string {
	return fmt.Sprintf("%s will deliver your order %s", partnerName, orderID)
}

// DeliveryInTransitMessage is sent to the customer when the partner departs.
func DeliveryInTransitMessage(orderID kernel.UUID) string {
	return fmt.Sprintf("Your order %s is on its way", orderID)
}

// LowStockMessage is sent to an inventory owner when a save lands at or below
// the low-stock threshold.
func LowStockMessage(itemName string, quantity, threshold int) string {
	return fmt.Sprintf("Low stock: %s is down to %d (threshold %d)", itemName, quantity, threshold)
}
