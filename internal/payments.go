package internal

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"sispay/config"
	"sispay/entity"
	"sispay/services"
)

// Payments ties the signing engine, the notification verifier and the code
// tables together. It uses fine-grained locking per order to allow concurrent
// operations while preventing race conditions on the stored order record.
type Payments struct {
	conf     *config.Config
	database services.Database
	logger   services.LogHandler
	signer   *Signer
	verifier *Verifier
	locks    sync.Map // map[string]*sync.Mutex for per-order locking
}

func NewPayments(conf *config.Config) *Payments {
	return &Payments{
		conf:     conf,
		signer:   NewSigner(conf),
		verifier: NewVerifier(conf.Merchant.Secret),
		locks:    sync.Map{},
	}
}

// lockOrder acquires a lock for a specific order to prevent concurrent
// modifications. Different orders are processed in parallel; operations on
// the same order are serialized.
func (p *Payments) lockOrder(order string) *sync.Mutex {
	value, _ := p.locks.LoadOrStore(order, &sync.Mutex{})
	mutex := value.(*sync.Mutex)
	mutex.Lock()
	return mutex
}

// unlockOrder releases the lock for an order and cleans up the mutex
// from the map to prevent memory leaks.
func (p *Payments) unlockOrder(order string, mutex *sync.Mutex) {
	mutex.Unlock()
	p.locks.Delete(order)
}

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
}

// CreatePayment builds the signed request for one checkout attempt. The
// browser, not this service, delivers it to the gateway; when the database is
// enabled an order record is opened so the notification can close it later.
func (p *Payments) CreatePayment(ctx context.Context, payment *entity.Payment) (*entity.PaymentRequest, error) {
	if p.conf.Merchant.Secret == "" {
		return nil, fmt.Errorf("merchant not configured")
	}

	if payment.MerchantCode == "" {
		payment.MerchantCode = p.conf.Merchant.Code
	}
	if payment.MerchantName == "" {
		payment.MerchantName = p.conf.Merchant.Name
	}
	if payment.MerchantUrl == "" {
		payment.MerchantUrl = p.conf.Merchant.MerchantUrl
	}
	if payment.UrlOk == "" {
		payment.UrlOk = p.conf.Merchant.UrlOk
	}
	if payment.UrlKo == "" {
		payment.UrlKo = p.conf.Merchant.UrlKo
	}

	request, err := p.signer.Sign(payment)
	if err != nil {
		p.logger.Error("create payment", err)
		return nil, err
	}
	p.logger.Info(fmt.Sprintf("order %s signed; amount %s %s", payment.Order, payment.Amount.String(), payment.Currency))

	p.openOrder(ctx, payment)

	return request, nil
}

func (p *Payments) openOrder(ctx context.Context, payment *entity.Payment) {
	if p.database == nil {
		return
	}
	mutex := p.lockOrder(payment.Order)
	defer p.unlockOrder(payment.Order, mutex)

	order := entity.PaymentOrder{
		Order:      payment.Order,
		Amount:     payment.Amount.String(),
		Currency:   payment.Currency,
		TimeOpened: time.Now(),
	}
	if err := p.database.SavePaymentOrder(ctx, &order); err != nil {
		p.logger.Error("save order", err)
	}
}

// Notify processes a payment notification callback from the gateway. The raw
// body is the form the gateway posted on redirect. A notification that fails
// verification is a security event: it is logged and reported as an error,
// and the order stays unconfirmed.
func (p *Payments) Notify(ctx context.Context, data []byte) error {
	params, err := url.ParseQuery(string(data))
	if err != nil {
		p.logger.Info(string(data))
		return fmt.Errorf("parse query: %v", err)
	}

	result := entity.PaymentRequest{
		SignatureVersion: params.Get("Ds_SignatureVersion"),
		Parameters:       params.Get("Ds_MerchantParameters"),
		Signature:        params.Get("Ds_Signature"),
	}
	if result.Parameters == "" || result.Signature == "" {
		return fmt.Errorf("notification without parameters or signature")
	}

	fields, err := p.verifier.Verify(result.Parameters, result.Signature)
	if err != nil {
		p.logger.Error("verify notification", err)
		return err
	}
	if fields == nil {
		p.logger.Warn(fmt.Sprintf("notification rejected: signature %s failed verification", secret(result.Signature)))
		return fmt.Errorf("notification rejected")
	}

	response := &entity.PaymentParameters{
		Order:    fields["Ds_Order"],
		Response: fields["Ds_Response"],
		Amount:   fields["Ds_Amount"],
		Currency: fields["Ds_Currency"],
		Date:     fields["Ds_Date"],
		Hour:     fields["Ds_Hour"],
		AuthCode: fields["Ds_AuthorisationCode"],
		Fields:   fields,
		Message:  ResolveMessage(fields["Ds_Response"]),
	}
	p.logger.Info(fmt.Sprintf("response: order: %s; code: %s; %s", response.Order, response.Response, response.Message))

	p.closeOrder(ctx, response)

	return nil
}

// ResolveCode maps a gateway response code to its display message.
func (p *Payments) ResolveCode(code string) string {
	return ResolveMessage(code)
}

func (p *Payments) closeOrder(ctx context.Context, response *entity.PaymentParameters) {
	if p.database == nil {
		return
	}
	mutex := p.lockOrder(response.Order)
	defer p.unlockOrder(response.Order, mutex)

	if err := p.database.SavePaymentResult(ctx, response); err != nil {
		p.logger.Error("save payment result", err)
	}

	order, err := p.database.GetPaymentOrder(ctx, response.Order)
	if err != nil {
		p.logger.Error("get payment order", err)
		return
	}
	if !order.IsClosed {
		order.IsClosed = true
		order.Result = fmt.Sprintf("%s %s", response.Response, response.Message)
		order.TimeClosed = time.Now()
		if err = p.database.SavePaymentOrder(ctx, order); err != nil {
			p.logger.Error("save payment order", err)
		}
	}
}

func secret(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
