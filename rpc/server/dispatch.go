package server

import (
	"fmt"
	"strings"

	"github.com/pg84s/loankv/lib/loan"
	"github.com/pg84s/loankv/lib/store"
	"github.com/pg84s/loankv/rpc/common"
)

// Dispatch executes one request against the shared store and builds the
// response. It never fails: every error condition, from a missing field to an
// arithmetic failure, is converted into an {ok:false, error:...} response.
// Command matching is case-insensitive.
func Dispatch(req *common.Request, st store.IStore) *common.Response {
	cmd := strings.ToUpper(req.Cmd)

	switch cmd {
	case "PING":
		return common.NewPongResponse()

	case "LOAN":
		return dispatchLoan(req)

	case "SET":
		if req.Key == nil || req.Value == nil {
			return common.NewErrorResponse("SET requires 'key' and 'value'")
		}
		if err := st.Set(*req.Key, req.Value); err != nil {
			return common.NewErrorResponse(err.Error())
		}
		return common.NewSetResponse()

	case "GET":
		if req.Key == nil {
			return common.NewErrorResponse("GET requires 'key'")
		}
		val, ok, err := st.Get(*req.Key)
		if err != nil {
			return common.NewErrorResponse(err.Error())
		}
		if !ok {
			return common.NewErrorResponse("not found")
		}
		return common.NewGetResponse(val)

	case "DEL":
		if req.Key == nil {
			return common.NewErrorResponse("DEL requires 'key'")
		}
		deleted, err := st.Delete(*req.Key)
		if err != nil {
			return common.NewErrorResponse(err.Error())
		}
		return common.NewDeleteResponse(deleted)

	case "KEYS":
		keys, err := st.Keys()
		if err != nil {
			return common.NewErrorResponse(err.Error())
		}
		return common.NewKeysResponse(keys)

	case "CLEAR":
		if err := st.Clear(); err != nil {
			return common.NewErrorResponse(err.Error())
		}
		return common.NewClearResponse()

	default:
		return common.NewErrorResponse(fmt.Sprintf("unknown cmd: %s", cmd))
	}
}

// dispatchLoan validates the LOAN fields and runs the amortization.
// The username is informational and may be absent; the numeric fields are
// required and reported field by field, first missing one wins.
func dispatchLoan(req *common.Request) *common.Response {
	if req.LoanAmount == nil {
		return common.NewErrorResponse("missing field: 'loan_amount'")
	}
	if req.Years == nil {
		return common.NewErrorResponse("missing field: 'years'")
	}
	if req.AnnualRate == nil {
		return common.NewErrorResponse("missing field: 'annual_rate'")
	}

	monthly, total, err := loan.Calculate(*req.LoanAmount, int(*req.Years), *req.AnnualRate)
	if err != nil {
		return common.NewErrorResponse(err.Error())
	}
	return common.NewLoanResponse(monthly, total)
}
