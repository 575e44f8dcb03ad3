package interaction

import (
	"context"

	"github.com/eurofurence/reg-paypal-adapter/internal/common"
)

// IdentityManager tells apart the ways a request can be authorized: with the
// fixed api token (service to service), or with a jwt whose roles may or may
// not include the configured admin role.
type IdentityManager struct {
	subject        string
	isAdmin        bool
	isAPITokenCall bool
}

func (i *IdentityManager) IsAdmin() bool {
	return i.isAdmin
}

func (i *IdentityManager) IsAPITokenCall() bool {
	return i.isAPITokenCall
}

func (i *IdentityManager) Subject() string {
	return i.subject
}

func NewIdentityManager(ctx context.Context, adminRole string) *IdentityManager {
	manager := &IdentityManager{}
	if _, ok := ctx.Value(common.CtxKeyAPIKey{}).(string); ok {
		manager.isAPITokenCall = true
		return manager
	}

	if claims, ok := ctx.Value(common.CtxKeyClaims{}).(*common.AllClaims); ok {
		manager.subject = claims.Subject

		for _, role := range claims.Global.Roles {
			if role == adminRole {
				manager.isAdmin = true
				break
			}
		}
	}

	return manager
}
