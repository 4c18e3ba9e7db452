package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/payments"
)

// StartCardPayment valida el borrador completo, lo aparca con un id de
// correlación y devuelve la URL de redirección de la pasarela. Aquí no se
// crea ninguna reserva: si el cliente abandona el checkout, el borrador
// caduca solo y no queda nada a medias.
type StartCardPayment struct {
	create  *CreateBooking
	drafts  *payments.DraftStore
	gateway payments.Gateway
}

func NewStartCardPayment(
	create *CreateBooking,
	drafts *payments.DraftStore,
	gateway payments.Gateway,
) *StartCardPayment {
	return &StartCardPayment{
		create:  create,
		drafts:  drafts,
		gateway: gateway,
	}
}

type CardCheckout struct {
	Ref         string  `json:"ref"`
	RedirectURL string  `json:"redirectUrl"`
	Total       float64 `json:"total"`
}

func (uc *StartCardPayment) Execute(
	ctx context.Context,
	in CreateBookingInput,
	returnURL string,
) (*CardCheckout, error) {

	in.Method = studio.MethodCard

	draft, _, err := uc.create.Prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	ref := uuid.NewString()
	if err := uc.drafts.Save(ctx, ref, in); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Reserva estudio %s", draft.Date)
	if draft.IsBonoPurchase() {
		title = fmt.Sprintf("Bono %.1f horas", draft.Duration)
	}

	session, err := uc.gateway.CreateCheckout(ctx, ref, title, draft.TotalPrice, returnURL)
	if err != nil {
		return nil, err
	}

	return &CardCheckout{
		Ref:         ref,
		RedirectURL: session.RedirectURL,
		Total:       draft.TotalPrice,
	}, nil
}
