package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"txtracker/internal/core"
	"txtracker/internal/http/handler"
	"txtracker/internal/http/handler/fake"
	"txtracker/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TrackerHandler", func() {
	var (
		fakeValidator *fake.RequestValidator
		fakeTracker   *fake.TrackerService
		trackerHdlr   *handler.TrackerHandler

		recorder *httptest.ResponseRecorder
		request  *http.Request
		response handler.Response

		account string
		fakeErr error
	)

	decodeBody := func() handler.Response {
		var resp handler.Response
		Expect(json.NewDecoder(recorder.Body).Decode(&resp)).To(Succeed())
		return resp
	}

	BeforeEach(func() {
		fakeValidator = new(fake.RequestValidator)
		fakeTracker = new(fake.TrackerService)
		trackerHdlr = handler.NewTrackerHandler(zap.NewNop().Sugar(), fakeValidator, fakeTracker)

		recorder = httptest.NewRecorder()
		account = "0x1111111111111111111111111111111111111111"
		fakeErr = errors.New("fake error")
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			body := `{"username":"alice","password":"secret"}`
			request = httptest.NewRequest(http.MethodPost, "/tracker/authenticate", strings.NewReader(body))
			request = request.WithContext(context.WithValue(request.Context(), middleware.RequestIDKey, "req-1"))
		})

		JustBeforeEach(func() {
			trackerHdlr.HandleAuthenticate(recorder, request)
			response = decodeBody()
		})

		When("credentials are valid", func() {
			BeforeEach(func() {
				fakeTracker.AuthenticateReturns("signed.token", nil)
			})

			It("should return the token", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(response.Message).To(Equal("Login successful"))

				data, ok := response.Data.(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(data["token"]).To(Equal("signed.token"))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Error).To(ContainSubstring("invalid request payload"))
				Expect(fakeTracker.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the credentials are rejected", func() {
			BeforeEach(func() {
				fakeTracker.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(response.Message).To(Equal("Login failed"))
				Expect(response.Error).To(Equal(core.ErrIncorrectPassword.Error()))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeTracker.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("should return 401", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("authentication fails for another reason", func() {
			BeforeEach(func() {
				fakeTracker.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Error).NotTo(ContainSubstring("fake error"))
			})
		})
	})

	Describe("HandleAddTransaction", func() {
		BeforeEach(func() {
			body := `{"hash":"0xabc123","description":"swap"}`
			request = httptest.NewRequest(http.MethodPost, "/tracker/transactions/"+account, strings.NewReader(body))
			request.SetPathValue("account", account)
		})

		JustBeforeEach(func() {
			trackerHdlr.HandleAddTransaction(recorder, request)
			response = decodeBody()
		})

		When("the transaction is accepted", func() {
			BeforeEach(func() {
				fakeTracker.AddTransactionReturns(core.TransactionRecord{
					Hash:           "0xabc123",
					Description:    "swap",
					Status:         core.StatusPending,
					AccountAddress: account,
				}, nil)
			})

			It("should return the created record", func() {
				Expect(recorder.Code).To(Equal(http.StatusCreated))
				Expect(response.Message).To(Equal("Transaction added"))

				data, ok := response.Data.(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(data["hash"]).To(Equal("0xabc123"))
				Expect(data["status"]).To(Equal("pending"))

				_, gotAccount, _ := fakeTracker.AddTransactionArgsForCall(0)
				Expect(gotAccount).To(Equal(account))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeTracker.AddTransactionCallCount()).To(Equal(0))
			})
		})

		When("the candidate fails validation", func() {
			BeforeEach(func() {
				fakeTracker.AddTransactionReturns(core.TransactionRecord{}, &core.ValidationError{
					Violations: []string{"Invalid transaction hash"},
				})
			})

			It("should return 400 with the violations", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Error).To(ContainSubstring("Unable to add transaction"))
				Expect(response.Error).To(ContainSubstring("Invalid transaction hash"))
			})
		})

		When("the details cannot be encoded", func() {
			BeforeEach(func() {
				fakeTracker.AddTransactionReturns(core.TransactionRecord{}, core.ErrUnsupportedDetail)
			})

			It("should return 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeTracker.AddTransactionReturns(core.TransactionRecord{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Error).NotTo(ContainSubstring("fake error"))
			})
		})
	})

	Describe("HandleGetTransactions", func() {
		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodGet, "/tracker/transactions/"+account, nil)
			request.SetPathValue("account", account)
		})

		JustBeforeEach(func() {
			trackerHdlr.HandleGetTransactions(recorder, request)
			response = decodeBody()
		})

		When("records exist", func() {
			BeforeEach(func() {
				fakeTracker.GetTransactionsReturns([]core.TransactionRecord{
					{Hash: "0xabc123", Status: core.StatusPending},
					{Hash: "0xffff", Status: core.StatusSuccess},
				}, nil)
			})

			It("should return them newest first", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				data, ok := response.Data.([]any)
				Expect(ok).To(BeTrue())
				Expect(data).To(HaveLen(2))
				Expect(data[0].(map[string]any)["hash"]).To(Equal("0xabc123"))

				_, gotAccount := fakeTracker.GetTransactionsArgsForCall(0)
				Expect(gotAccount).To(Equal(account))
			})
		})

		When("fetching fails", func() {
			BeforeEach(func() {
				fakeTracker.GetTransactionsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetTransaction", func() {
		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodGet, "/tracker/transactions/"+account+"/0xabc123", nil)
			request.SetPathValue("account", account)
			request.SetPathValue("hash", "0xabc123")
		})

		JustBeforeEach(func() {
			trackerHdlr.HandleGetTransaction(recorder, request)
			response = decodeBody()
		})

		When("the record exists", func() {
			BeforeEach(func() {
				fakeTracker.GetTransactionReturns(core.TransactionRecord{
					Hash:   "0xabc123",
					Status: core.StatusSuccess,
				}, true, nil)
			})

			It("should return the record", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				data, ok := response.Data.(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(data["hash"]).To(Equal("0xabc123"))

				_, gotAccount, gotHash := fakeTracker.GetTransactionArgsForCall(0)
				Expect(gotAccount).To(Equal(account))
				Expect(gotHash).To(Equal("0xabc123"))
			})
		})

		When("the record does not exist", func() {
			BeforeEach(func() {
				fakeTracker.GetTransactionReturns(core.TransactionRecord{}, false, nil)
			})

			It("should return 404", func() {
				Expect(recorder.Code).To(Equal(http.StatusNotFound))
				Expect(response.Message).To(Equal("Transaction not found"))
			})
		})

		When("fetching fails", func() {
			BeforeEach(func() {
				fakeTracker.GetTransactionReturns(core.TransactionRecord{}, false, fakeErr)
			})

			It("should return 500", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleClearTransactions", func() {
		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodDelete, "/tracker/transactions/"+account, nil)
			request.SetPathValue("account", account)
		})

		JustBeforeEach(func() {
			trackerHdlr.HandleClearTransactions(recorder, request)
			response = decodeBody()
		})

		When("clearing succeeds", func() {
			It("should return 200", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(response.Message).To(Equal("Transactions cleared"))

				_, gotAccount := fakeTracker.ClearTransactionsArgsForCall(0)
				Expect(gotAccount).To(Equal(account))
			})
		})

		When("clearing fails", func() {
			BeforeEach(func() {
				fakeTracker.ClearTransactionsReturns(fakeErr)
			})

			It("should return 500", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
