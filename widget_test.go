package guigrid

import (
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidget_NewWidget(t *testing.T) {
	for _, kind := range []Kind{KindLabel, KindButton, KindEdit, KindCheck, KindRadio} {
		w, err := NewWidget(kind, "text")
		require.NoError(t, err, kind.String())
		assert.Equal(t, kind, w.Kind())
	}

	_, err := NewWidget(Kind(42), "text")
	assert.Error(t, err)
	assert.Equal(t, "kind(42)", Kind(42).String())

	_, err = NewWidget(KindImage, "missing.png")
	assert.Error(t, err)
}

func TestWidget_Signals(t *testing.T) {
	assert := assert.New(t)

	signals := map[Signaler]string{
		B("b"):      "clicked",
		E("e"):      "submitted",
		C("c"):      "toggled",
		R("r", nil): "selected",
	}
	for w, name := range signals {
		assert.Equal(name, w.Signal().Name(), w.Kind().String())
		assert.Zero(w.Signal().emit(), "nothing pending on %v", w.Kind())
	}

	var _ Widget = L("label")
	_, ok := Widget(L("label")).(Signaler)
	assert.False(ok)
	_, ok = Widget(Img(image.NewNRGBA(image.Rect(0, 0, 1, 1)), "img")).(Signaler)
	assert.False(ok)
}

func TestWidget_State(t *testing.T) {
	assert := assert.New(t)

	e := E("city")
	assert.Equal("", e.Text())
	e.SetText("Cluj")
	assert.Equal("Cluj", e.Text())
	assert.Equal("city", e.Name())

	// Submissions are reported one at a time.
	e.Submit()
	e.Submit()
	assert.Equal(2, e.Signal().emit())
	assert.Zero(e.Signal().emit())

	c := C("agree")
	assert.False(c.Checked())
	c.SetChecked(true)
	assert.True(c.Checked())

	l := L("before")
	l.SetText("after")
	assert.Equal("after", l.Text())
}

func TestWidget_RadioGroup(t *testing.T) {
	assert := assert.New(t)

	group := NewRadioGroup()
	a, b := R("a", group), R("b", group)
	assert.NotEqual(a.key, b.key)
	assert.Equal("", group.Value())

	b.Select()
	assert.True(b.Selected())
	assert.False(a.Selected())
	assert.Equal(b.key, group.Value())

	a.Select()
	assert.True(a.Selected())
	assert.False(b.Selected())

	// Programmatic selection does not emit.
	assert.Zero(a.Signal().emit())

	alone := R("alone", nil)
	assert.NotSame(group, alone.Group())
}

func TestWidget_ImageFit(t *testing.T) {
	assert := assert.New(t)

	img := Img(image.NewNRGBA(image.Rect(0, 0, 200, 100)), "banner")
	assert.Equal(KindImage, img.Kind())
	assert.Equal("banner", img.Text())

	fitted := img.fit(image.Pt(50, 50))
	assert.Equal(image.Pt(50, 25), fitted.Bounds().Size())
	assert.Same(fitted, img.fit(image.Pt(50, 50)), "fitted picture is cached")

	// Pictures are never enlarged.
	assert.Equal(image.Pt(200, 100), img.fit(image.Pt(800, 800)).Bounds().Size())
}

func TestWidget_LoadImageRejectsText(t *testing.T) {
	_, err := decodeImage("parse.go")
	assert.True(t, errors.Is(err, ErrNotImage))
}

func TestWidget_LoadImageFromUrl(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/img/logo.png":
			png.Encode(w, image.NewNRGBA(image.Rect(0, 0, 6, 3)))
		case "/notes.txt":
			w.Write([]byte("plain text, not a picture"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	img, err := LoadImage(srv.URL + "/img/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "logo", img.Text())
	assert.Equal(t, image.Rect(0, 0, 6, 3), img.Bounds())

	_, err = LoadImage(srv.URL + "/notes.txt")
	assert.True(t, errors.Is(err, ErrNotImage))

	_, err = LoadImage(srv.URL + "/missing.png")
	assert.Error(t, err)
}
