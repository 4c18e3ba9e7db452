package payments

import "context"

// CheckoutSession es la sesión de pago creada en la pasarela: el cliente
// se redirige a RedirectURL y vuelve con Ref como correlación.
type CheckoutSession struct {
	Ref         string
	RedirectURL string
}

// Gateway abstrae la pasarela de tarjeta. Para el núcleo es opaca: crea
// una sesión de pago por redirección y el retorno trae un indicador de
// éxito junto a la referencia. Nada más.
type Gateway interface {
	CreateCheckout(
		ctx context.Context,
		ref string,
		title string,
		amount float64,
		returnURL string,
	) (*CheckoutSession, error)
}
