package httpkit

import (
	"net/http"
	"path"
)

// MountAPI opens /api/<version>, installs mw on that scope only and lets mount fill it
//
//	httpkit.MountAPI(r, "v2", httpkit.CommonStack(httpkit.StackOptions{}), func(api httpkit.Router) {
//		recipes.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(path.Join("/api", version), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
