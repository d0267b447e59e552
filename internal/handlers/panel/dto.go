package panel

import (
	"errors"
	corePanel "hoteladmin/internal/panel"
	"hoteladmin/internal/resource"
	"hoteladmin/shared/failure"
	"net/http"
)

// ChangeDraftRequest carries form values keyed by field name.
type ChangeDraftRequest struct {
	Values map[string]any `json:"values" validate:"required,min=1,dive,keys,notblank,endkeys"`
}

// SubmitRequest optionally carries values applied before submitting.
type SubmitRequest struct {
	Values map[string]any `json:"values"`
}

type ResultResponse struct {
	Outcome corePanel.Outcome `json:"outcome"`
	Alert   string            `json:"alert,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type PanelResponse struct {
	View   corePanel.View `json:"view"`
	Result ResultResponse `json:"result"`
}

func toValues(raw map[string]any) map[string]string {
	values := make(map[string]string, len(raw))
	for name, value := range raw {
		values[name] = resource.Text(value)
	}

	return values
}

func newPanelResponse(view corePanel.View, res corePanel.Result) PanelResponse {
	out := PanelResponse{
		View: view,
		Result: ResultResponse{
			Outcome: res.Outcome,
			Alert:   res.Alert,
		},
	}

	if res.Err != nil {
		out.Result.Error = res.Err.Error()
	}

	return out
}

// statusOf maps a panel result to the console's own status code. Backend
// rejections surface as 502 whatever status the backend answered with.
func statusOf(res corePanel.Result) int {
	switch res.Outcome {
	case corePanel.OK:
		return http.StatusOK
	case corePanel.Declined:
		return failure.DeleteNotConfirmed.Code
	case corePanel.Blocked:
		var fail *failure.Failure
		if errors.As(res.Err, &fail) {
			return fail.Code
		}

		return http.StatusBadRequest
	default:
		if code := failure.GetCode(res.Err); code >= http.StatusInternalServerError {
			return code
		}

		return http.StatusBadGateway
	}
}
