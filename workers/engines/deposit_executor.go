package engines

import (
	"encoding/json"
	"errors"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/referral"
	"github.com/refpay/refpay/types"
)

// DepositExecutorWorker processes deposits submitted through the queue
// instead of the HTTP API. The distribution semantics are identical; only
// the intake differs.
type DepositExecutorWorker struct {
}

func NewDepositExecutorWorker() *DepositExecutorWorker {
	return &DepositExecutorWorker{}
}

func (w *DepositExecutorWorker) Process(payload []byte) error {
	var deposit_payload *types.DepositPayloadMessage

	if err := json.Unmarshal(payload, &deposit_payload); err != nil {
		return err
	}

	distributor := referral.NewDistributor(referral.NewGormStore(config.DataBase))

	result, err := distributor.ProcessDeposit(
		deposit_payload.UID,
		deposit_payload.Amount,
		deposit_payload.Method,
		deposit_payload.TID,
	)

	if err != nil {
		// Poison payloads are acked, not redelivered forever.
		if errors.Is(err, referral.ErrMemberNotFound) || errors.Is(err, referral.ErrInvalidAmount) {
			config.Logger.Errorf("Rejected deposit payload for %s: %v", deposit_payload.UID, err)
			return nil
		}

		return err
	}

	result.Transaction.TriggerEvent()
	result.Transaction.WriteToInflux()

	return nil
}
