package payments

import (
	"context"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPagoGateway crea preferencias de checkout por redirección. La
// referencia externa de la preferencia es el id de correlación con el
// borrador pendiente.
type MercadoPagoGateway struct {
	client preference.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(
	ctx context.Context,
	ref string,
	title string,
	amount float64,
	returnURL string,
) (*CheckoutSession, error) {

	req := preference.Request{
		ExternalReference: ref,
		Items: []preference.ItemRequest{
			{
				Title:      title,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: "EUR",
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: returnURL,
			Pending: returnURL,
			Failure: returnURL,
		},
	}

	res, err := g.client.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{
		Ref:         ref,
		RedirectURL: res.InitPoint,
	}, nil
}

var _ Gateway = (*MercadoPagoGateway)(nil)
