package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"sispay/config"
	"sispay/entity"
	"sispay/services"
)

const (
	createPayment = "/payment"
	paymentNotify = "/notify"
	resolveCode   = "/payment/code/:code"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
}

// signedPayment is the response to a checkout signing request: the form
// fields the browser must post, plus the gateway endpoint to post them to.
type signedPayment struct {
	entity.PaymentRequest
	PaymentUrl string `json:"payment_url"`
}

type codeMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(createPayment, s.createPayment)
	router.POST(paymentNotify, s.paymentNotify)
	router.GET(resolveCode, s.resolveCode)
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Add request ID for tracing
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create payment: read request body", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var payment entity.Payment
	err = json.Unmarshal(body, &payment)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create payment: decode request body", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request, err := s.payments.CreatePayment(ctx, &payment)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create payment", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response := signedPayment{
		PaymentRequest: *request,
		PaymentUrl:     s.conf.Merchant.PaymentUrl,
	}
	s.writeJson(w, &response)
}

func (s *Server) paymentNotify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Add request ID for tracing
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment notify: get body", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// the gateway always gets 200; a rejected notification is logged only
	err = s.payments.Notify(ctx, body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment notify: process body", reqID), err)
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) resolveCode(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	code := ps.ByName("code")
	message := s.payments.ResolveCode(code)
	if message == "" {
		s.logger.Warn(fmt.Sprintf("[%s] unknown response code: %s", reqID, code))
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.writeJson(w, &codeMessage{Code: code, Message: message})
}

func (s *Server) writeJson(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", err)
	}
}
