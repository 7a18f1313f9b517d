package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvitha/outfit-advisor/internal/domain/auth"
	"github.com/anvitha/outfit-advisor/internal/domain/recommender"
	apperrors "github.com/anvitha/outfit-advisor/pkg/errors"
)

// The HTML front-end mirrors the JSON API for people poking at the service
// from a browser. It is intentionally plain: a form page and a result page.

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head><title>Outfit Advisor</title></head>
<body>
<h1>Outfit Advisor</h1>
{{if .Error}}<p style="color:red">{{.Error}}</p>{{end}}
<form method="post" action="/get_recommendation">
  <label>Username <input name="username" value="{{.Username}}" required></label><br>
  <label>Password <input name="password" type="password" required></label><br>
  <label>Age group
    <select name="age_group">
      <option value="adult">adult</option>
      <option value="teen">teen</option>
      <option value="toddler">toddler</option>
      <option value="senior">senior</option>
    </select>
  </label><br>
  <label>Gender
    <select name="gender">
      <option value="unisex">unisex</option>
      <option value="female">female</option>
      <option value="male">male</option>
    </select>
  </label><br>
  <label>What are you dressing for? <input name="prompt" size="60" value="{{.Prompt}}" required></label><br>
  <button type="submit">Recommend</button>
</form>
</body>
</html>`))

var resultTemplate = template.Must(template.New("result").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(resultTemplateText))

const resultTemplateText = `<!DOCTYPE html>
<html>
<head><title>Outfit Advisor</title></head>
<body>
<h1>Outfits for {{.Result.User}}</h1>
<p>Occasion: {{.Result.Occasion}} ({{.Result.Context.TimeOfDay}}, {{.Result.Context.Season}})</p>
{{range $i, $outfit := .Result.Outfits}}
<h2>Outfit {{inc $i}} ({{$outfit.Type}})</h2>
<ul>
{{range $outfit.Items}}
  <li>{{.Name}}{{if .Image}} <img src="/wardrobe/{{.Image}}" alt="{{.Name}}" height="80">{{end}}</li>
{{end}}
</ul>
{{end}}
<p><a href="/">Try another prompt</a></p>
</body>
</html>`

type formPage struct {
	Username string
	Prompt   string
	Error    string
}

type resultPage struct {
	Result recommender.Result
}

// RecommendForm renders the HTML prompt form.
func (h *Handler) RecommendForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, formPage{})
}

// RecommendFormSubmit handles the form flow: register the user if the
// username is new, otherwise verify the password and update preferences,
// then run the engine and render the result page.
func (h *Handler) RecommendFormSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	ageGroup := c.PostForm("age_group")
	gender := c.PostForm("gender")
	prompt := c.PostForm("prompt")

	if prompt == "" {
		h.renderForm(c, http.StatusBadRequest, formPage{Username: username, Error: "prompt is required"})
		return
	}

	ctx := c.Request.Context()
	prefs := auth.Preferences{AgeGroup: ageGroup, Gender: gender}

	_, err := h.authSvc.Register(ctx, auth.RegisterRequest{
		Username: username,
		Password: password,
		AgeGroup: ageGroup,
		Gender:   gender,
	})
	switch {
	case err == nil:
		// New account.
	case apperrors.IsCode(err, "user_exists"):
		if authErr := h.authSvc.Authenticate(ctx, username, password); authErr != nil {
			h.renderForm(c, http.StatusUnauthorized, formPage{Username: username, Prompt: prompt, Error: "invalid username or password"})
			return
		}
		if prefErr := h.authSvc.SetPreferences(ctx, username, prefs); prefErr != nil {
			h.renderForm(c, http.StatusBadRequest, formPage{Username: username, Prompt: prompt, Error: errMessage(prefErr)})
			return
		}
	default:
		h.renderForm(c, http.StatusBadRequest, formPage{Username: username, Prompt: prompt, Error: errMessage(err)})
		return
	}

	stored, err := h.authSvc.Preferences(ctx, username)
	if err != nil {
		h.renderForm(c, http.StatusInternalServerError, formPage{Username: username, Prompt: prompt, Error: errMessage(err)})
		return
	}

	result, err := h.recSvc.Recommend(ctx, recommender.Request{
		User:   username,
		Prompt: prompt,
		Profile: recommender.Profile{
			AgeGroup: stored.AgeGroup,
			Gender:   stored.Gender,
		},
	})
	if err != nil {
		h.renderForm(c, http.StatusInternalServerError, formPage{Username: username, Prompt: prompt, Error: errMessage(err)})
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := resultTemplate.Execute(c.Writer, resultPage{Result: result}); err != nil {
		h.logger.Error("render result page failed", "error", err)
	}
}

func (h *Handler) renderForm(c *gin.Context, status int, page formPage) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := formTemplate.Execute(c.Writer, page); err != nil {
		h.logger.Error("render form page failed", "error", err)
	}
}
