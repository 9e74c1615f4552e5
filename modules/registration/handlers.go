package registration

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/signup"
)

var (
	errSubmissionFailed = handler.ErrServiceUnavailable.With("submission_failed", signup.MessageSubmitFailed)
	errEmailTaken       = handler.ErrConflict.With("email_taken", MessageEmailTaken)
)

// SubmitResponse is the JSON body of a successful plain submission.
type SubmitResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (s *Service) initial(ctx handler.Context, _ FormRequest) handler.Response {
	return handler.Signals(emptyForm(Status{}))
}

func (s *Service) check(ctx handler.Context, req FormRequest) handler.Response {
	field, err := signup.ParseField(req.Field)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}

	values := req.Values()
	affected := signup.Affected(field)
	results := make([]signup.Result, 0, len(affected))
	for _, f := range affected {
		res, err := signup.CheckField(f, values)
		if err != nil {
			return handler.Error(err)
		}
		results = append(results, res)
	}

	return handler.Signals(CheckSignals{
		Fields:    fieldStates(results...),
		CanSubmit: signup.IsFormValid(values),
	})
}

func (s *Service) state(ctx handler.Context, req FormRequest) handler.Response {
	state := signup.Evaluate(req.Values())
	return handler.Signals(CheckSignals{
		Fields:    fieldStates(state.Results()...),
		CanSubmit: state.AllValid,
	})
}

func (s *Service) submit(ctx handler.Context, req FormRequest) handler.Response {
	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(func(stream handler.StreamContext) error {
			return s.streamSubmit(stream, req.Values())
		})
	}

	account, err := s.submitter.Submit(ctx, req.Values())
	switch {
	case err == nil:
		return handler.JSON(SubmitResponse{ID: account.ID.String(), Message: signup.MessageSubmitted},
			handler.WithJSONStatus(http.StatusCreated))
	case errors.Is(err, signup.ErrSubmissionFailed):
		return handler.Error(errors.Join(errSubmissionFailed, err))
	case errors.Is(err, signup.ErrEmailTaken):
		return handler.Error(errors.Join(errEmailTaken, err))
	default:
		return handler.Error(err)
	}
}

// streamSubmit mirrors the browser flow: show every field error and stop
// if the form is invalid, otherwise report "Submitting...", wait for the
// result and either reset the form or report the failure.
func (s *Service) streamSubmit(stream handler.StreamContext, values signup.Values) error {
	state := signup.Evaluate(values)
	if !state.AllValid {
		return stream.SendSignals(CheckSignals{
			Fields:    fieldStates(state.Results()...),
			CanSubmit: false,
		})
	}

	if err := stream.SendSignals(StatusSignals{
		Status:     Status{Message: signup.MessageSubmitting, Kind: KindInfo},
		Submitting: true,
		CanSubmit:  false,
	}); err != nil {
		return err
	}

	future := s.submitter.SubmitAsync(stream, values)
	account, err := future.AwaitContext(stream)

	switch {
	case err == nil:
		s.log.InfoContext(stream, "signup completed over stream",
			logger.AccountID(account.ID.String()),
			logger.Handler("registration.submit"),
		)
		return stream.SendSignals(emptyForm(Status{Message: signup.MessageSubmitted, Kind: KindSuccess}))
	case errors.Is(err, signup.ErrSubmissionFailed):
		return stream.SendSignals(StatusSignals{
			Status:    Status{Message: signup.MessageSubmitFailed, Kind: KindError},
			CanSubmit: true,
		})
	case errors.Is(err, signup.ErrEmailTaken):
		return stream.SendSignals(StatusSignals{
			Status:    Status{Message: MessageEmailTaken, Kind: KindWarning},
			CanSubmit: true,
		})
	case stream.Err() != nil:
		// Client went away; nobody is left to tell.
		return nil
	default:
		s.log.ErrorContext(stream, "signup failed over stream",
			logger.Error(err),
			logger.Handler("registration.submit"),
		)
		return stream.SendSignals(StatusSignals{
			Status:    Status{Message: signup.MessageSubmitFailed, Kind: KindError},
			CanSubmit: true,
		})
	}
}
