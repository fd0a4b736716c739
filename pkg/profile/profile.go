// Package profile implements the profile resolution engine: creating
// profiles from the default template, loading them with
// default-inheritance and required-field validation, and the edit,
// delete, and select operations around them.
//
// The resolver never exits the process. Every failure is reported
// through the Messenger collaborator and returned as a typed error
// from pkg/errors.
package profile

import (
	"os"
	"strings"

	"github.com/arthur-debert/envprof/pkg/config"
	"github.com/arthur-debert/envprof/pkg/errors"
	"github.com/arthur-debert/envprof/pkg/hooks"
	"github.com/arthur-debert/envprof/pkg/logging"
	"github.com/arthur-debert/envprof/pkg/store"
	"github.com/arthur-debert/envprof/pkg/template"
	"github.com/arthur-debert/envprof/pkg/types"
)

// Built-in placeholder names available in every template.
const (
	// PlaceholderProfile is bound to the name of the profile being
	// created.
	PlaceholderProfile = "PROFILE"

	// PlaceholderApp is bound to the host application's name.
	PlaceholderApp = "PROFILE_NAME"
)

// Collaborators are the external capabilities the resolver consumes.
// Nil fields fall back to inert implementations: no prompting, no
// editor, messages dropped, environment untouched. The CLI wires real
// ones; library callers pick what they need.
type Collaborators struct {
	Env       types.Environ
	Prompter  types.Prompter
	Editor    types.Editor
	Messenger types.Messenger
	Hooks     *hooks.Registry
}

// Resolver is the load-time engine. It owns no files itself; the
// store does. One resolver serves one application configuration.
type Resolver struct {
	cfg          *config.Config
	store        *store.Store
	templateText string
	tmpl         *template.Template
	env          types.Environ
	prompter     types.Prompter
	editor       types.Editor
	msg          types.Messenger
	hooks        *hooks.Registry
}

// New builds a Resolver. The default template comes from
// cfg.Template, or from cfg.SchemaFile when set (the structured form
// wins; it renders to the legacy text for creation). An absent
// template is legal and yields an empty vocabulary.
func New(cfg *config.Config, st *store.Store, c Collaborators) (*Resolver, error) {
	text := cfg.Template
	var tmpl *template.Template

	if cfg.SchemaFile != "" {
		data, err := os.ReadFile(cfg.SchemaFile)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfig, "failed to read schema file %s", cfg.SchemaFile)
		}
		tmpl, err = template.ParseSchema(string(data))
		if err != nil {
			return nil, err
		}
		text = tmpl.Render()
	} else {
		tmpl = template.Parse(text)
	}

	r := &Resolver{
		cfg:          cfg,
		store:        st,
		templateText: text,
		tmpl:         tmpl,
		env:          c.Env,
		prompter:     c.Prompter,
		editor:       c.Editor,
		msg:          c.Messenger,
		hooks:        c.Hooks,
	}
	if r.env == nil {
		r.env = types.NewMapEnviron()
	}
	if r.msg == nil {
		r.msg = noopMessenger{}
	}
	return r, nil
}

// Template returns the parsed default template, for callers that only
// need the variable vocabulary without loading a profile.
func (r *Resolver) Template() *template.Template {
	return r.tmpl
}

// Store returns the backing profile store.
func (r *Resolver) Store() *store.Store {
	return r.store
}

// fail reports err through the messenger and returns it unchanged.
func (r *Resolver) fail(err error) error {
	r.msg.Error("%v", err)
	return err
}

// Load resolves a profile: clear, merge, validate, export. Returns
// the full mapping; on any failure no partial mapping is returned and
// the process environment keeps whatever the clear phase left.
func (r *Resolver) Load(name string) (*ResolvedProfile, error) {
	logger := logging.GetLogger("profile")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	if name == "" {
		return nil, r.fail(errors.NewNotFoundError(name))
	}
	if err := store.ValidateName(name); err != nil {
		return nil, r.fail(err)
	}
	if !r.store.Exists(name) {
		return nil, r.fail(errors.NewNotFoundError(name))
	}

	r.hooks.Run(hooks.ActionLoad, hooks.PhasePre)

	// Clear phase: every template name plus the configured extras, so
	// nothing leaks from a previously loaded profile.
	for _, varName := range r.tmpl.Names() {
		_ = r.env.Unset(varName)
	}
	for _, varName := range r.cfg.ExtraVariables {
		_ = r.env.Unset(varName)
	}

	// Merge phase: template defaults first, stored overrides second.
	resolved := newResolvedProfile(name)
	for _, v := range r.tmpl.Variables() {
		resolved.Set(v.Name, v.Value)
	}

	data, err := r.store.Read(name)
	if err != nil {
		return nil, r.fail(err)
	}
	overrides := template.Parse(string(data))
	for _, v := range overrides.Variables() {
		// A commented line in the stored file is not an assignment.
		if !v.Required {
			continue
		}
		resolved.Set(v.Name, v.Value)
	}

	// Validation phase: fail fast on the first required name the stored
	// file does not itself assign a non-empty value. Template defaults
	// pre-fill the file at creation time but never satisfy a
	// requirement at load time.
	for _, required := range r.tmpl.RequiredNames() {
		if v, ok := overrides.Lookup(required); !ok || !v.Required || v.Value == "" {
			return nil, r.fail(errors.NewMissingRequiredVariableError(required, name))
		}
	}

	// Export phase: the resolved variables plus the profile name
	// itself become visible in the variable namespace.
	for _, varName := range resolved.Names() {
		value, _ := resolved.Get(varName)
		if err := r.env.Set(varName, value); err != nil {
			return nil, r.fail(errors.Wrapf(err, errors.ErrInternal, "failed to export %s", varName))
		}
	}
	if err := r.env.Set(r.profileEnvVar(), name); err != nil {
		return nil, r.fail(errors.Wrapf(err, errors.ErrInternal, "failed to export %s", r.profileEnvVar()))
	}

	r.hooks.Run(hooks.ActionLoad, hooks.PhasePost)

	logger.Info().Str("profile", name).Int("variables", resolved.Len()).Msg("Profile loaded")
	return resolved, nil
}

// Create writes a new profile file from the default template with
// placeholders substituted. Returns the path of the written file.
// Creation never overwrites an existing profile.
func (r *Resolver) Create(name string, extra map[string]string) (string, error) {
	logger := logging.GetLogger("profile")

	var err error
	if name == "" {
		name, err = r.deriveName()
		if err != nil {
			return "", r.fail(err)
		}
	}
	if err := store.ValidateName(name); err != nil {
		return "", r.fail(err)
	}

	path := r.store.PathFor(name)
	if r.store.Exists(name) {
		return "", r.fail(errors.NewAlreadyExistsError(name, path))
	}

	r.hooks.Run(hooks.ActionCreate, hooks.PhasePre)

	if err := r.store.EnsureProfileDir(); err != nil {
		return "", r.fail(err)
	}

	content := template.Substitute(r.templateText, r.placeholders(name, extra))
	content = template.SqueezeBlankLines(content)
	if err := r.store.Write(name, []byte(content)); err != nil {
		return "", r.fail(err)
	}
	logger.Info().Str("profile", name).Str("path", path).Msg("Profile created")

	if r.cfg.Interactive && r.editor != nil {
		if err := r.editor.Open(path); err != nil {
			r.msg.Warning("Could not open an editor for %s: %v", path, err)
		}
	} else {
		r.msg.Warning("Profile %q written to %s; edit it manually to adjust values.", name, path)
	}

	r.hooks.Run(hooks.ActionCreate, hooks.PhasePost)
	return path, nil
}

// Edit opens an existing profile in the editor collaborator.
func (r *Resolver) Edit(name string) error {
	var err error
	if name == "" {
		name, err = r.Select("")
		if err != nil {
			return err
		}
	}
	if err := store.ValidateName(name); err != nil {
		return r.fail(err)
	}
	if !r.store.Exists(name) {
		return r.fail(errors.NewNotFoundError(name))
	}

	r.hooks.Run(hooks.ActionEdit, hooks.PhasePre)

	if r.editor == nil {
		return r.fail(errors.New(errors.ErrEditor, "no editor available"))
	}
	if err := r.editor.Open(r.store.PathFor(name)); err != nil {
		return r.fail(errors.Wrapf(err, errors.ErrEditor, "failed to edit profile %q", name))
	}

	r.hooks.Run(hooks.ActionEdit, hooks.PhasePost)
	return nil
}

// Delete removes an existing profile after confirmation. With force
// set the confirmation is skipped; otherwise a declined confirmation
// cancels without error.
func (r *Resolver) Delete(name string, force bool) error {
	logger := logging.GetLogger("profile")

	var err error
	if name == "" {
		name, err = r.Select("")
		if err != nil {
			return err
		}
	}
	if err := store.ValidateName(name); err != nil {
		return r.fail(err)
	}
	if !r.store.Exists(name) {
		return r.fail(errors.NewNotFoundError(name))
	}

	if !force {
		if !r.cfg.Interactive || r.prompter == nil {
			return r.fail(errors.NewInputRequiredError("confirmation to delete (use force in non-interactive mode)"))
		}
		ok, err := r.prompter.Confirm("Delete profile "+name+"?", false)
		if err != nil {
			return r.fail(errors.Wrap(err, errors.ErrInputRequired, "confirmation failed"))
		}
		if !ok {
			r.msg.Info("Deletion of %q cancelled.", name)
			return nil
		}
	}

	r.hooks.Run(hooks.ActionDelete, hooks.PhasePre)

	if err := r.store.Delete(name); err != nil {
		return r.fail(err)
	}
	logger.Info().Str("profile", name).Msg("Profile deleted")

	r.hooks.Run(hooks.ActionDelete, hooks.PhasePost)
	return nil
}

// Select picks one profile name from the store, filtered by pattern.
// A single candidate short-circuits the prompt; an empty store is
// NoProfilesAvailableError.
func (r *Resolver) Select(pattern string) (string, error) {
	names, err := r.store.List(pattern)
	if err != nil {
		return "", r.fail(err)
	}
	switch {
	case len(names) == 0:
		return "", r.fail(errors.NewNoProfilesAvailableError())
	case len(names) == 1:
		return names[0], nil
	}

	if !r.cfg.Interactive || r.prompter == nil {
		return "", r.fail(errors.NewInputRequiredError("profile name (several profiles match)"))
	}
	name, err := r.prompter.Select("Choose a profile", names)
	if err != nil {
		return "", r.fail(errors.Wrap(err, errors.ErrInputRequired, "selection failed"))
	}
	if name == "" {
		return "", r.fail(errors.NewInputRequiredError("profile name"))
	}
	return name, nil
}

// deriveName obtains a profile name interactively when none was
// supplied.
func (r *Resolver) deriveName() (string, error) {
	if !r.cfg.Interactive || r.prompter == nil {
		return "", errors.NewInputRequiredError("profile name")
	}
	name, err := r.prompter.Input("Name for the new profile", "")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInputRequired, "prompt failed")
	}
	if name == "" {
		return "", errors.NewInputRequiredError("profile name")
	}
	return name, nil
}

// placeholders builds the substitution set: the two built-ins, then
// the configured extra placeholder variables resolved from the
// environment, then caller-supplied extras on top.
func (r *Resolver) placeholders(name string, extra map[string]string) map[string]string {
	set := map[string]string{
		PlaceholderProfile: name,
		PlaceholderApp:     r.cfg.AppName,
	}
	for _, varName := range r.cfg.ExtraPlaceholders {
		if value, ok := r.env.Lookup(varName); ok {
			set[varName] = value
		}
	}
	for k, v := range extra {
		set[k] = v
	}
	return set
}

// profileEnvVar is the variable the loaded profile's own name is
// exported under, e.g. MYAPP_PROFILE.
func (r *Resolver) profileEnvVar() string {
	app := strings.ToUpper(r.cfg.AppName)
	mapper := func(c rune) rune {
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return c
		}
		return '_'
	}
	app = strings.Map(mapper, app)
	if app == "" {
		app = "ENVPROF"
	}
	return app + "_PROFILE"
}

// noopMessenger drops all messages; the library default when no
// messenger collaborator is wired.
type noopMessenger struct{}

func (noopMessenger) Info(string, ...interface{})    {}
func (noopMessenger) Warning(string, ...interface{}) {}
func (noopMessenger) Error(string, ...interface{})   {}
