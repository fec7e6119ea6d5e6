package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"SkiShop/internal/auth"
	"SkiShop/internal/cart"
	"SkiShop/internal/catalog"
	"SkiShop/pkg/kit"
)

const (
	featuredCount = 4
	relatedCount  = 4

	flashCookie = "shop_flash"
)

type Server struct {
	Log      *zap.Logger
	Catalog  *catalog.Store
	Cart     cart.Store
	Ledger   *cart.Ledger
	Users    auth.Store
	Sessions *auth.Sessions

	tmpl *templates
}

type Deps struct {
	Log      *zap.Logger
	Catalog  *catalog.Store
	Cart     cart.Store
	Users    auth.Store
	Sessions *auth.Sessions
}

func NewServer(deps Deps) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Server{
		Log:      deps.Log,
		Catalog:  deps.Catalog,
		Cart:     deps.Cart,
		Ledger:   &cart.Ledger{Store: deps.Cart, Catalog: deps.Catalog},
		Users:    deps.Users,
		Sessions: deps.Sessions,
		tmpl:     tmpl,
	}, nil
}

// basePage carries what the layout needs on every page.
type basePage struct {
	Identity *auth.Identity
	Flash    string
}

func (s *Server) base(r *http.Request) basePage {
	var p basePage
	if ident, ok := auth.IdentityFromContext(r.Context()); ok {
		p.Identity = &ident
	}
	return p
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := s.tmpl.render(w, status, page, data); err != nil {
		if s.Log != nil {
			s.Log.Error("render failed", zap.Error(err), zap.String("page", page))
		}
		kit.WritePlain(w, http.StatusInternalServerError, "server error")
	}
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	}
	kit.WritePlain(w, http.StatusInternalServerError, "server error")
}

// ---- pages ----

type homePage struct {
	basePage
	Products []catalog.Product
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	page := homePage{
		basePage: s.base(r),
		Products: s.Catalog.Featured(featuredCount),
	}
	// Flash messages surface only here; other pages leave the cookie alone.
	page.Flash = popFlash(w, r)

	s.render(w, r, http.StatusOK, "home", page)
}

type catalogPage struct {
	basePage
	Category string
	Items    []catalog.Product
	Count    int
	Facets   catalog.Facets
	Selected catalog.Query
}

func (s *Server) catalogList(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	q := catalog.ParseQuery(r.URL.Query())
	res := s.Catalog.List(category, q)

	s.render(w, r, http.StatusOK, "catalog", catalogPage{
		basePage: s.base(r),
		Category: category,
		Items:    res.Items,
		Count:    len(res.Items),
		Facets:   res.Facets,
		Selected: q,
	})
}

func (s *Server) salesRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/catalog/sales", http.StatusFound)
}

func (s *Server) arrivalsRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/catalog/arrivals", http.StatusFound)
}

type productPage struct {
	basePage
	Product catalog.Product
	Related []catalog.Product
}

func (s *Server) productDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WritePlain(w, http.StatusNotFound, "product not found")
		return
	}

	p, ok := s.Catalog.Get(id)
	if !ok {
		kit.WritePlain(w, http.StatusNotFound, "product not found")
		return
	}

	s.render(w, r, http.StatusOK, "product", productPage{
		basePage: s.base(r),
		Product:  p,
		Related:  s.Catalog.Related(p, relatedCount),
	})
}

// ---- cart ----

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WritePlain(w, http.StatusNotFound, "product not found")
		return
	}

	if err := s.Cart.Add(r.Context(), ident.Email, id); err != nil {
		s.serverError(w, r, "cart add failed", err)
		return
	}

	setFlash(w, "Added to cart.")

	back := r.Referer()
	if back == "" {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusFound)
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	if ident, ok := auth.IdentityFromContext(r.Context()); ok {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err == nil {
			if err := s.Cart.RemoveAll(r.Context(), ident.Email, id); err != nil {
				s.serverError(w, r, "cart remove failed", err)
				return
			}
		}
	}
	http.Redirect(w, r, "/cart", http.StatusFound)
}

type cartPage struct {
	basePage
	Items      []catalog.Product
	TotalCents int64
}

func (s *Server) cartView(w http.ResponseWriter, r *http.Request) {
	page := cartPage{basePage: s.base(r)}

	if ident, ok := auth.IdentityFromContext(r.Context()); ok {
		items, total, err := s.Ledger.Materialize(r.Context(), ident.Email)
		if err != nil {
			s.serverError(w, r, "cart materialize failed", err)
			return
		}
		page.Items = items
		page.TotalCents = total
	}

	s.render(w, r, http.StatusOK, "cart", page)
}

// ---- checkout ----

type checkoutPage struct {
	basePage
}

func (s *Server) checkoutForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "checkout", checkoutPage{basePage: s.base(r)})
}

// checkoutSubmit persists nothing: there is no order pipeline behind the
// storefront yet.
func (s *Server) checkoutSubmit(w http.ResponseWriter, r *http.Request) {
	setFlash(w, "Thanks! Your order was received.")
	http.Redirect(w, r, "/", http.StatusFound)
}

// ---- auth ----

type authPage struct {
	basePage
	Error string
	Email string
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login", authPage{basePage: s.base(r)})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	email, password := formCredentials(r)
	if email == "" || password == "" {
		s.render(w, r, http.StatusBadRequest, "login", authPage{
			basePage: s.base(r),
			Error:    "Email and password are required.",
			Email:    email,
		})
		return
	}

	u, err := s.Users.Verify(r.Context(), email, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		s.render(w, r, http.StatusUnauthorized, "login", authPage{
			basePage: s.base(r),
			Error:    "Invalid email or password.",
			Email:    email,
		})
		return
	}
	if err != nil {
		s.serverError(w, r, "login failed", err)
		return
	}

	s.establishSession(w, r, u)
}

func (s *Server) registerForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "register", authPage{basePage: s.base(r)})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	email, password := formCredentials(r)
	if email == "" || password == "" {
		s.render(w, r, http.StatusBadRequest, "register", authPage{
			basePage: s.base(r),
			Error:    "Email and password are required.",
			Email:    email,
		})
		return
	}

	id := "u_" + uuid.NewString()
	err := s.Users.Create(r.Context(), email, password, id)
	if errors.Is(err, auth.ErrEmailExists) {
		s.render(w, r, http.StatusConflict, "register", authPage{
			basePage: s.base(r),
			Error:    "User already exists.",
			Email:    email,
		})
		return
	}
	if err != nil {
		s.serverError(w, r, "register failed", err)
		return
	}

	s.establishSession(w, r, auth.User{ID: id, Email: email})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) establishSession(w http.ResponseWriter, r *http.Request, u auth.User) {
	token, err := s.Sessions.Issue(u)
	if err != nil {
		s.serverError(w, r, "session issue failed", err)
		return
	}
	s.Sessions.SetCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

func formCredentials(r *http.Request) (email, password string) {
	_ = r.ParseForm()
	email = strings.ToLower(strings.TrimSpace(r.PostFormValue("email")))
	password = strings.TrimSpace(r.PostFormValue("password"))
	return email, password
}

// ---- flash ----

func setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}
