package service_test

import (
	"context"
	"testing"

	"github.com/OliverHuron/SICAII/internal/apierror"
	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/model"
	"github.com/OliverHuron/SICAII/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestFixture(t *testing.T) (*stubRequestRepo, service.RequestService, uint) {
	t.Helper()
	reqs := newStubRequestRepo()
	inv := newStubInventoryRepo()
	deps := newStubDepartmentRepo()

	dep := &model.Department{Name: "Sistemas"}
	require.NoError(t, deps.Create(context.Background(), dep))

	svc := service.NewRequestService(reqs, inv, deps)
	return reqs, svc, dep.ID
}

func TestRequestCreateForcesPending(t *testing.T) {
	reqs, svc, depID := newRequestFixture(t)

	id, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		Description:  "El equipo no enciende",
		Priority:     model.PriorityAlta,
		DepartmentID: depID,
	})
	require.NoError(t, err)

	r := reqs.rows[id]
	assert.Equal(t, model.RequestPending, r.Status)
	assert.Equal(t, uint(5), r.UserID)
}

func TestRequestCreateInvalidPriority(t *testing.T) {
	_, svc, depID := newRequestFixture(t)

	_, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		Description:  "Falla",
		Priority:     "Altísima",
		DepartmentID: depID,
	})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Equal(t, "Prioridad inválida", err.Error())
}

func TestRequestCreateUnknownInventory(t *testing.T) {
	_, svc, depID := newRequestFixture(t)

	_, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		InventoryID:  uintPtr(404),
		Description:  "Falla",
		Priority:     model.PriorityBaja,
		DepartmentID: depID,
	})
	require.Error(t, err)
	assert.Equal(t, "Elemento de inventario no encontrado", err.Error())
}

func TestRequestCreateAdminNotesIgnoredForUsers(t *testing.T) {
	reqs, svc, depID := newRequestFixture(t)

	id, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		Description:  "Falla",
		Priority:     model.PriorityBaja,
		DepartmentID: depID,
		AdminNotes:   strPtr("nota colada"),
	})
	require.NoError(t, err)
	assert.Nil(t, reqs.rows[id].AdminNotes)

	id, err = svc.Create(context.Background(), asAdmin(1), dto.CreateRequestRequest{
		Description:  "Falla",
		Priority:     model.PriorityBaja,
		DepartmentID: depID,
		AdminNotes:   strPtr("revisar garantía"),
	})
	require.NoError(t, err)
	require.NotNil(t, reqs.rows[id].AdminNotes)
	assert.Equal(t, "revisar garantía", *reqs.rows[id].AdminNotes)
}

func TestRequestGetHidesForeignRows(t *testing.T) {
	_, svc, depID := newRequestFixture(t)

	id, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		Description: "Falla", Priority: model.PriorityBaja, DepartmentID: depID,
	})
	require.NoError(t, err)

	// The owner and any admin can see it.
	_, err = svc.Get(context.Background(), asUser(5), id)
	assert.NoError(t, err)
	_, err = svc.Get(context.Background(), asAdmin(1), id)
	assert.NoError(t, err)

	// Another user gets a 404, not a 403: existence is not leaked.
	_, err = svc.Get(context.Background(), asUser(6), id)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestRequestListScopesNonAdmins(t *testing.T) {
	_, svc, depID := newRequestFixture(t)

	for _, owner := range []uint{5, 5, 6} {
		_, err := svc.Create(context.Background(), asUser(owner), dto.CreateRequestRequest{
			Description: "Falla", Priority: model.PriorityBaja, DepartmentID: depID,
		})
		require.NoError(t, err)
	}

	mine, err := svc.List(context.Background(), asUser(5), dto.RequestFilter{})
	require.NoError(t, err)
	assert.Len(t, mine.Requests, 2)
	assert.EqualValues(t, 2, mine.Pagination.Total)

	all, err := svc.List(context.Background(), asAdmin(1), dto.RequestFilter{})
	require.NoError(t, err)
	assert.Len(t, all.Requests, 3)
}

func TestRequestUpdateOwnershipAndState(t *testing.T) {
	reqs, svc, depID := newRequestFixture(t)

	id, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		Description: "Falla", Priority: model.PriorityBaja, DepartmentID: depID,
	})
	require.NoError(t, err)

	// A stranger cannot touch the row.
	err = svc.Update(context.Background(), asUser(6), id, dto.UpdateRequestRequest{Description: strPtr("hack")})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindUnauthorized))
	assert.Equal(t, "No autorizado", err.Error())

	// The owner can, while the request is still pending.
	err = svc.Update(context.Background(), asUser(5), id, dto.UpdateRequestRequest{Priority: strPtr(model.PriorityUrgente)})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityUrgente, reqs.rows[id].Priority)

	// Once approved, only admins may edit.
	reqs.rows[id].Status = model.RequestApproved
	err = svc.Update(context.Background(), asUser(5), id, dto.UpdateRequestRequest{Description: strPtr("cambio")})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Equal(t, "Solo se pueden editar solicitudes pendientes", err.Error())

	err = svc.Update(context.Background(), asAdmin(1), id, dto.UpdateRequestRequest{Description: strPtr("cambio")})
	assert.NoError(t, err)
}

func TestRequestUpdateAdminOnlyFields(t *testing.T) {
	reqs, svc, depID := newRequestFixture(t)

	id, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		Description: "Falla", Priority: model.PriorityBaja, DepartmentID: depID,
	})
	require.NoError(t, err)

	// A regular user's status/notes fields are silently dropped.
	err = svc.Update(context.Background(), asUser(5), id, dto.UpdateRequestRequest{
		Status:     strPtr(model.RequestCompleted),
		AdminNotes: strPtr("autoaprobada"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.RequestPending, reqs.rows[id].Status)
	assert.Nil(t, reqs.rows[id].AdminNotes)

	// Admins drive the lifecycle.
	err = svc.Update(context.Background(), asAdmin(1), id, dto.UpdateRequestRequest{
		Status:          strPtr(model.RequestRejected),
		RejectionReason: strPtr("Equipo fuera de garantía"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.RequestRejected, reqs.rows[id].Status)
	require.NotNil(t, reqs.rows[id].RejectionReason)
	assert.Equal(t, "Equipo fuera de garantía", *reqs.rows[id].RejectionReason)
}

func TestRequestUpdateInvalidStatus(t *testing.T) {
	_, svc, depID := newRequestFixture(t)

	id, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		Description: "Falla", Priority: model.PriorityBaja, DepartmentID: depID,
	})
	require.NoError(t, err)

	err = svc.Update(context.Background(), asAdmin(1), id, dto.UpdateRequestRequest{Status: strPtr("archivada")})
	require.Error(t, err)
	assert.Equal(t, "Estado de solicitud inválido", err.Error())
}

func TestRequestDeletePendingOnlyForUsers(t *testing.T) {
	reqs, svc, depID := newRequestFixture(t)

	id, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		Description: "Falla", Priority: model.PriorityBaja, DepartmentID: depID,
	})
	require.NoError(t, err)

	reqs.rows[id].Status = model.RequestInProgress
	err = svc.Delete(context.Background(), asUser(5), id)
	require.Error(t, err)
	assert.Equal(t, "Solo se pueden eliminar solicitudes pendientes", err.Error())

	// Admins can remove a request in any state.
	require.NoError(t, svc.Delete(context.Background(), asAdmin(1), id))
	_, ok := reqs.rows[id]
	assert.False(t, ok)
}

func TestRequestDeleteByStranger(t *testing.T) {
	_, svc, depID := newRequestFixture(t)

	id, err := svc.Create(context.Background(), asUser(5), dto.CreateRequestRequest{
		Description: "Falla", Priority: model.PriorityBaja, DepartmentID: depID,
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), asUser(6), id)
	assert.True(t, apierror.IsKind(err, apierror.KindUnauthorized))
}
