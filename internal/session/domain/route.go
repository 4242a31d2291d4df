package domain

type Route int

const (
	RouteLoading Route = iota
	RouteLogin
	RouteOnboarding
	RouteMainTabs
)

func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteOnboarding:
		return "onboarding"
	case RouteMainTabs:
		return "mainTabs"
	default:
		return "loading"
	}
}
