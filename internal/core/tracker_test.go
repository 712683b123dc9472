package core_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"sync"

	"txtracker/internal/core"
	"txtracker/internal/core/fake"
	"txtracker/internal/repository"
	tokenIssuer "txtracker/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tracker", func() {
	var (
		fakeStorage *fake.Storage
		fakeUsers   *fake.UserRepository
		fakeJWT     *fake.JWTIssuer
		fakeLogger  *zap.SugaredLogger
		ctx         context.Context

		tracker *core.Tracker

		storedMu sync.Mutex
		stored   []byte

		account string
		fakeErr error
	)

	seedDataset := func(data map[string][]core.TransactionRecord) {
		raw, err := json.Marshal(data)
		Expect(err).NotTo(HaveOccurred())
		storedMu.Lock()
		stored = raw
		storedMu.Unlock()
	}

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		fakeUsers = new(fake.UserRepository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		stored = nil
		fakeStorage.LoadDatasetStub = func(context.Context) ([]byte, error) {
			storedMu.Lock()
			defer storedMu.Unlock()
			return stored, nil
		}
		fakeStorage.SaveDatasetStub = func(_ context.Context, data []byte) error {
			storedMu.Lock()
			defer storedMu.Unlock()
			stored = data
			return nil
		}

		tracker = core.NewTracker(fakeLogger, fakeStorage, fakeUsers, fakeJWT, core.TrackerConfig{})

		account = "0x1111111111111111111111111111111111111111"
		fakeErr = errors.New("fake error")
	})

	Describe("AddTransaction", func() {
		var (
			candidate core.TransactionCandidate
			record    core.TransactionRecord
			err       error
		)

		BeforeEach(func() {
			candidate = core.TransactionCandidate{
				Hash:        "0xabc123",
				Description: "borrow",
			}
		})

		JustBeforeEach(func() {
			record, err = tracker.AddTransaction(ctx, account, candidate)
		})

		When("the candidate is valid", func() {
			It("should persist a pending record at the head of the list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(core.StatusPending))
				Expect(record.AccountAddress).To(Equal(account))
				Expect(record.Timestamp).NotTo(BeZero())

				records, getErr := tracker.GetTransactions(ctx, account)
				Expect(getErr).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))
				Expect(records[0].Hash).To(Equal("0xabc123"))
				Expect(records[0].Status).To(Equal(core.StatusPending))
				Expect(fakeStorage.SaveDatasetCallCount()).To(Equal(1))
			})
		})

		When("a record with the same hash already exists", func() {
			BeforeEach(func() {
				_, addErr := tracker.AddTransaction(ctx, account, core.TransactionCandidate{
					Hash:        "0xabc123",
					Description: "first attempt",
				})
				Expect(addErr).NotTo(HaveOccurred())
				_, addErr = tracker.AddTransaction(ctx, account, core.TransactionCandidate{
					Hash:        "0xffff",
					Description: "other",
				})
				Expect(addErr).NotTo(HaveOccurred())

				candidate.Description = "second attempt"
			})

			It("should keep exactly one record with that hash, moved to the head", func() {
				Expect(err).NotTo(HaveOccurred())

				records, getErr := tracker.GetTransactions(ctx, account)
				Expect(getErr).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Hash).To(Equal("0xabc123"))
				Expect(records[0].Description).To(Equal("second attempt"))
				Expect(records[1].Hash).To(Equal("0xffff"))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				candidate.Hash = "not-a-hash"
			})

			It("should reject the candidate without persisting anything", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("Unable to add transaction"))
				Expect(err.Error()).To(ContainSubstring("Invalid transaction hash"))
				Expect(fakeStorage.SaveDatasetCallCount()).To(Equal(0))
			})
		})

		When("every field is invalid", func() {
			BeforeEach(func() {
				zero := int64(0)
				candidate = core.TransactionCandidate{
					Hash:          "xyz",
					Description:   "",
					Confirmations: &zero,
				}
			})

			It("should report all violations together", func() {
				var verr *core.ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue())
				Expect(verr.Violations).To(ConsistOf(
					"Invalid transaction hash",
					"Transaction description is required",
					"Confirmations must be a positive integer"))
			})
		})

		When("the details hold an arbitrary-precision integer", func() {
			var wei *big.Int

			BeforeEach(func() {
				wei, _ = new(big.Int).SetString("123456789012345678901234567890123456789", 10)
				candidate.Details = map[string]any{"amountWei": wei}
			})

			It("should persist it losslessly as a string", func() {
				Expect(err).NotTo(HaveOccurred())

				records, getErr := tracker.GetTransactions(ctx, account)
				Expect(getErr).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))

				encoded, ok := records[0].Details["amountWei"].(string)
				Expect(ok).To(BeTrue())

				decoded, ok := new(big.Int).SetString(encoded, 10)
				Expect(ok).To(BeTrue())
				Expect(decoded.Cmp(wei)).To(BeZero())
			})
		})

		When("saving to storage fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveDatasetStub = nil
				fakeStorage.SaveDatasetReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTransactions", func() {
		When("the account has no transactions", func() {
			It("should return the same empty collection on every call", func() {
				first, err := tracker.GetTransactions(ctx, account)
				Expect(err).NotTo(HaveOccurred())
				Expect(first).To(BeEmpty())

				second, err := tracker.GetTransactions(ctx, "0x2222222222222222222222222222222222222222")
				Expect(err).NotTo(HaveOccurred())
				Expect(second).To(BeEmpty())

				Expect(reflect.ValueOf(first).Pointer()).To(Equal(reflect.ValueOf(second).Pointer()))
			})
		})

		When("the persisted dataset is malformed", func() {
			BeforeEach(func() {
				storedMu.Lock()
				stored = []byte("{not json")
				storedMu.Unlock()
			})

			It("should treat it as empty instead of failing", func() {
				records, err := tracker.GetTransactions(ctx, account)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})

		When("loading from storage fails", func() {
			BeforeEach(func() {
				fakeStorage.LoadDatasetStub = nil
				fakeStorage.LoadDatasetReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := tracker.GetTransactions(ctx, account)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTransaction", func() {
		BeforeEach(func() {
			_, err := tracker.AddTransaction(ctx, account, core.TransactionCandidate{
				Hash:        "0xabc123",
				Description: "borrow",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should find an existing record by hash", func() {
			record, found, err := tracker.GetTransaction(ctx, account, "0xabc123")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(record.Description).To(Equal("borrow"))
		})

		It("should report a missing hash as absent", func() {
			_, found, err := tracker.GetTransaction(ctx, account, "0xdead")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})

	Describe("SetTransactionStatus", func() {
		var notifications []string

		BeforeEach(func() {
			notifications = nil
			_, err := tracker.AddTransaction(ctx, account, core.TransactionCandidate{
				Hash:        "0xabc123",
				Description: "borrow",
			})
			Expect(err).NotTo(HaveOccurred())

			tracker.OnTransactionStatus(func(status core.Status, txHash string) {
				notifications = append(notifications, fmt.Sprintf("%s:%s", status, txHash))
			})
		})

		It("should settle a pending record and notify subscribers exactly once", func() {
			err := tracker.SetTransactionStatus(ctx, account, "0xabc123", core.StatusSuccess)
			Expect(err).NotTo(HaveOccurred())

			record, found, err := tracker.GetTransaction(ctx, account, "0xabc123")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(record.Status).To(Equal(core.StatusSuccess))

			Expect(notifications).To(Equal([]string{"success:0xabc123"}))
		})

		It("should never move a record out of a terminal state", func() {
			Expect(tracker.SetTransactionStatus(ctx, account, "0xabc123", core.StatusSuccess)).To(Succeed())
			Expect(tracker.SetTransactionStatus(ctx, account, "0xabc123", core.StatusError)).To(Succeed())

			record, _, err := tracker.GetTransaction(ctx, account, "0xabc123")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(core.StatusSuccess))
		})

		It("should leave the list unchanged for an unknown hash", func() {
			Expect(tracker.SetTransactionStatus(ctx, account, "0xdead", core.StatusError)).To(Succeed())

			records, err := tracker.GetTransactions(ctx, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Status).To(Equal(core.StatusPending))
		})
	})

	Describe("ClearTransactions", func() {
		BeforeEach(func() {
			_, err := tracker.AddTransaction(ctx, account, core.TransactionCandidate{
				Hash:        "0xabc123",
				Description: "borrow",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should empty the account's list and drop its key from storage", func() {
			Expect(tracker.ClearTransactions(ctx, account)).To(Succeed())

			records, err := tracker.GetTransactions(ctx, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())

			storedMu.Lock()
			raw := string(stored)
			storedMu.Unlock()
			Expect(raw).To(MatchJSON(`{}`))
		})
	})

	Describe("pruning", func() {
		BeforeEach(func() {
			records := make([]core.TransactionRecord, 0, 65)
			for i := 0; i < 5; i++ {
				records = append(records, core.TransactionRecord{
					Hash:           fmt.Sprintf("0xpending%02d", i),
					Description:    "pending",
					Status:         core.StatusPending,
					AccountAddress: account,
				})
			}
			for i := 0; i < 60; i++ {
				// newest first: completed00 is the newest completed record
				records = append(records, core.TransactionRecord{
					Hash:           fmt.Sprintf("0xcompleted%02d", i),
					Description:    "completed",
					Status:         core.StatusSuccess,
					AccountAddress: account,
				})
			}
			seedDataset(map[string][]core.TransactionRecord{account: records})
		})

		It("should keep all pending records and only the newest 50 completed ones", func() {
			_, err := tracker.AddTransaction(ctx, account, core.TransactionCandidate{
				Hash:        "0xaaaa",
				Description: "fresh",
			})
			Expect(err).NotTo(HaveOccurred())

			records, err := tracker.GetTransactions(ctx, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(56))

			pending := 0
			completed := 0
			hashes := make(map[string]struct{}, len(records))
			for _, rec := range records {
				hashes[rec.Hash] = struct{}{}
				if rec.Status == core.StatusPending {
					pending++
				} else {
					completed++
				}
			}
			Expect(pending).To(Equal(6))
			Expect(completed).To(Equal(50))

			for i := 50; i < 60; i++ {
				Expect(hashes).NotTo(HaveKey(fmt.Sprintf("0xcompleted%02d", i)))
			}
		})
	})

	Describe("OnChange", func() {
		It("should fire once per persisted mutation until unsubscribed", func() {
			calls := 0
			unsubscribe := tracker.OnChange(func() { calls++ })

			_, err := tracker.AddTransaction(ctx, account, core.TransactionCandidate{
				Hash:        "0xabc123",
				Description: "borrow",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(Equal(1))

			Expect(tracker.ClearTransactions(ctx, account)).To(Succeed())
			Expect(calls).To(Equal(2))

			unsubscribe()
			_, err = tracker.AddTransaction(ctx, account, core.TransactionCandidate{
				Hash:        "0xabc123",
				Description: "borrow",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(Equal(2))
		})
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = tracker.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeUsers.GetUserFromDBReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   authMsg.Username,
					Subject:    userId,
					Expiration: 24,
				}))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeUsers.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeUsers.GetUserFromDBReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserFromDBReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
