package cancel_reservation

// CancelReservationRequest HTTP request model. The user id comes from the
// identity header, not the body.
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
