package intake

import (
	"context"
	"fmt"
	"patient-intake-service/internal/app/contracts"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/dto/requests"
	"patient-intake-service/internal/pkg/exceptions"
	"patient-intake-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Orchestrator submits intake drafts of one form instance, at most one at
// a time. Locker is optional and extends the guarantee across replicas.
type Orchestrator struct {
	PatientService contracts.PatientService
	Navigator      contracts.Navigator
	Reporter       contracts.DiagnosticReporter
	Locker         contracts.LockerService
	LockExpiry     time.Duration
	Log            *zap.Logger
	gate           submissionGate
}

func NewOrchestrator(
	patientService contracts.PatientService,
	navigator contracts.Navigator,
	reporter contracts.DiagnosticReporter,
	locker contracts.LockerService,
	lockExpiry time.Duration,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		PatientService: patientService,
		Navigator:      navigator,
		Reporter:       reporter,
		Locker:         locker,
		LockExpiry:     lockExpiry,
		Log:            logger,
	}
}

func (o *Orchestrator) State() SubmissionState {
	return o.gate.current()
}

func (o *Orchestrator) IsBusy() bool {
	return o.gate.current() == SubmissionStateSubmitting
}

func (o *Orchestrator) OnStateChange(listener StateListener) {
	o.gate.subscribe(listener)
}

// Submit sends draft to the patient service and navigates to the booking
// route once the record exists. It never returns an error and never
// panics: every failure is reported and mapped to a status.
func (o *Orchestrator) Submit(ctx context.Context, draft *requests.PatientIntakeDraft, ownerID string) (status SubmitStatus) {
	requestID := utils.GetRequestID(ctx)

	if !o.gate.begin() {
		o.Log.Info("Orchestrator.Submit ignored while a submission is in flight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOwnerIDKey, ownerID),
		)
		return SubmitStatusBusy
	}
	defer o.gate.settle()

	// created flips once the remote record exists, after which a panic can
	// only come from navigation.
	created := false
	defer func() {
		if recovered := recover(); recovered != nil {
			if created {
				o.report(ctx, exceptions.ErrNavigationPanicked(recovered))
				status = SubmitStatusCreated
			} else {
				o.report(ctx, exceptions.ErrRegistrationPanicked(recovered))
				status = SubmitStatusFailed
			}
		}
		o.Log.Info("Orchestrator.Submit finished",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOwnerIDKey, ownerID),
			zap.String(constvars.LoggingSubmitStatusKey, status.String()),
		)
	}()

	if draft == nil {
		o.report(ctx, exceptions.ErrServerProcess(fmt.Errorf("nil draft submitted")))
		return SubmitStatusFailed
	}
	snapshot := draft.Clone()

	if o.Locker != nil {
		lockKey := utils.GenerateSubmitLockKey(ownerID)
		acquired, lockValue, err := o.Locker.TryLock(ctx, lockKey, o.LockExpiry)
		if err != nil {
			o.report(ctx, err)
			return SubmitStatusFailed
		}
		if !acquired {
			return SubmitStatusBusy
		}
		defer o.unlock(ctx, lockKey, lockValue)
	}

	request, err := utils.BuildPatientRecordRequest(snapshot, ownerID)
	if err != nil {
		o.report(ctx, err)
		return SubmitStatusInvalidDate
	}

	result, err := o.PatientService.RegisterPatient(ctx, request)
	if err != nil {
		o.report(ctx, exceptions.ErrRegisterPatient(err))
		return SubmitStatusFailed
	}
	if result == nil || result.ID == "" {
		o.report(ctx, exceptions.ErrEmptyRegistration(nil))
		return SubmitStatusFailed
	}

	created = true

	o.Log.Info("Orchestrator.Submit patient registered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerIDKey, ownerID),
		zap.String(constvars.LoggingPatientIDKey, result.ID),
	)
	o.Navigator.GoTo(ctx, utils.GenerateNewAppointmentRoute(ownerID))
	return SubmitStatusCreated
}

// report never panics so the recover in Submit can rely on it.
func (o *Orchestrator) report(ctx context.Context, err error) {
	if o.Reporter == nil {
		return
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			o.Log.Error("Orchestrator.report reporter panicked",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Any("recovered", recovered),
				zap.NamedError("reported_error", err),
			)
		}
	}()
	o.Reporter.Report(ctx, err)
}

// unlock outlives a cancelled request so the lock does not linger until
// it expires.
func (o *Orchestrator) unlock(ctx context.Context, lockKey, lockValue string) {
	err := o.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
	if err != nil {
		o.Log.Warn("Orchestrator.unlock error releasing submission lock",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
	}
}
