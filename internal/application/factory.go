package application

import (
	"github.com/google/uuid"

	"github.com/tyler-dunkel/vendo/internal/ports"
)

// ActorDetails seeds a new actor.
type ActorDetails struct {
	Cash int // cents
}

// NewActor constructs an Admin only when the supplied credential passes the
// verifier. A missing or rejected credential never errors; it degrades to a
// plain User.
func NewActor(details ActorDetails, credential string, verifier ports.CredentialVerifier, clock ports.Clock) Actor {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	cash := details.Cash
	if cash < 0 {
		cash = 0
	}

	user := User{cash: cash, clock: clock}

	if credential != "" && verifier != nil && verifier.Verify(credential) {
		return &Admin{User: user, id: uuid.New()}
	}

	return &user
}
