package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"tableman/service"
)

// Build mounts the whole operations surface under /v1. Interceptors
// (access log, unavailable, recover, pretty errors) are attached by the
// caller so tests can pick their own set.
func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		injectServicer(s),
	)

	v1.Resource("/table").
		WithActions(
			box.Get(getTable),
		)

	v1.Resource("/view").
		WithActions(
			box.Get(getView),
			box.Put(setView),
			box.ActionPost(search),
			box.ActionPost(sortOn),
		)

	v1.Resource("/stats").
		WithActions(
			box.Get(getStats),
		)

	v1.Resource("/records").
		WithActions(
			box.Get(listRecords),
			box.Post(addRecord),
			box.ActionPost(find),
		)

	v1.Resource("/records/{recordId}").
		WithActions(
			box.Get(getRecord),
			box.Patch(updateRecord),
			box.Delete(deleteRecord),
			box.ActionPost(beginEdit),
			box.ActionPost(setField),
			box.ActionPost(commitEdit),
			box.ActionPost(cancelEdit),
		)

	v1.Resource("/edits").
		WithActions(
			box.Get(listEdits),
			box.ActionPost(commitAll),
			box.ActionPost(cancelAll),
		)

	v1.Resource("/columns").
		WithActions(
			box.Get(listColumns),
			box.Post(addColumn),
			box.ActionPost(reorder),
		)

	v1.Resource("/columns/{columnKey}").
		WithActions(
			box.ActionPost(toggle),
			box.ActionPost(setLabel),
		)

	v1.Resource("/import").
		WithActions(
			box.Post(importRecords),
		)

	v1.Resource("/export").
		WithActions(
			box.Get(exportRecords),
		)

	v1.Resource("/settings").
		WithActions(
			box.Get(getSettings),
			box.ActionPost(toggleDarkMode),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	b.Resource("/v1/*").
		WithActions(box.AnyMethod(func(w http.ResponseWriter) interface{} {
			w.WriteHeader(http.StatusNotImplemented)
			return PrettyError{
				Message:     "not implemented",
				Description: "this endpoint does not exist, please check the documentation",
			}
		}))

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}
