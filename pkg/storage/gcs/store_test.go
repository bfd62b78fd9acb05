package gcs

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/oneconcern/dsindex/pkg/errors"
	"github.com/oneconcern/dsindex/pkg/storage"
	"github.com/oneconcern/dsindex/pkg/storage/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type fakeObject struct {
	contentType string
	data        string
}

// fakeBucket serves the subset of the GCS JSON API used by the store:
// object metadata lookups and multipart uploads.
type fakeBucket struct {
	mx        sync.Mutex
	bucket    string
	objects   map[string]fakeObject
	uploads   int
	forbidden bool
}

func writeAPIError(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"error":{"code":%d,"message":%q}}`, code, http.StatusText(code))
}

func (f *fakeBucket) objectResource(name string, obj fakeObject) map[string]interface{} {
	return map[string]interface{}{
		"kind":        "storage#object",
		"bucket":      f.bucket,
		"name":        name,
		"contentType": obj.contentType,
		"size":        fmt.Sprintf("%d", len(obj.data)),
		"generation":  "1",
	}
}

func (f *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mx.Lock()
	defer f.mx.Unlock()

	objects := "/b/" + f.bucket + "/o"
	switch {
	case r.Method == http.MethodGet && strings.Contains(r.URL.Path, objects+"/"):
		name := r.URL.Path[strings.Index(r.URL.Path, objects+"/")+len(objects)+1:]
		obj, ok := f.objects[name]
		if !ok {
			writeAPIError(w, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.objectResource(name, obj))
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, objects):
		if f.forbidden {
			writeAPIError(w, http.StatusForbidden)
			return
		}
		name, obj, err := readMultipartUpload(r)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest)
			return
		}
		f.uploads++
		f.objects[name] = obj
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.objectResource(name, obj))
	default:
		writeAPIError(w, http.StatusMethodNotAllowed)
	}
}

func readMultipartUpload(r *http.Request) (string, fakeObject, error) {
	_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return "", fakeObject{}, err
	}
	mr := multipart.NewReader(r.Body, params["boundary"])

	part, err := mr.NextPart()
	if err != nil {
		return "", fakeObject{}, err
	}
	var meta struct {
		Name        string `json:"name"`
		ContentType string `json:"contentType"`
	}
	if err = json.NewDecoder(part).Decode(&meta); err != nil {
		return "", fakeObject{}, err
	}

	part, err = mr.NextPart()
	if err != nil {
		return "", fakeObject{}, err
	}
	data, err := ioutil.ReadAll(part)
	if err != nil {
		return "", fakeObject{}, err
	}
	return meta.Name, fakeObject{contentType: meta.ContentType, data: string(data)}, nil
}

func setupStore(t *testing.T, opts ...Option) (*fakeBucket, storage.Store) {
	fake := &fakeBucket{bucket: "tfds-data", objects: map[string]fakeObject{}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	opts = append(opts, ClientOptions(
		option.WithEndpoint(server.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
	))
	store, err := New(context.Background(), fake.bucket, "", opts...)
	require.NoError(t, err)
	return fake, store
}

func writeObject(t *testing.T, store storage.Store, key, content string) error {
	w, err := store.NewWriter(context.Background(), key)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	return w.Close()
}

func TestWriteAndHas(t *testing.T) {
	ctx := context.Background()
	fake, store := setupStore(t)
	assert.Equal(t, "gcs://tfds-data", store.String())

	has, err := store.Has(ctx, "community-datasets-list.tsv")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, writeObject(t, store, "community-datasets-list.tsv", "namespace\tname\tpath\r\n"))

	has, err = store.Has(ctx, "community-datasets-list.tsv")
	require.NoError(t, err)
	assert.True(t, has)

	obj := fake.objects["community-datasets-list.tsv"]
	assert.Equal(t, "namespace\tname\tpath\r\n", obj.data)
	assert.Equal(t, DefaultContentType, obj.contentType)
}

func TestWriteReplaces(t *testing.T) {
	fake, store := setupStore(t, ContentType("text/plain"))

	require.NoError(t, writeObject(t, store, "index.tsv", "a much longer first version\r\n"))
	require.NoError(t, writeObject(t, store, "index.tsv", "second\r\n"))

	assert.Equal(t, 2, fake.uploads)
	assert.Equal(t, "second\r\n", fake.objects["index.tsv"].data)
	assert.Equal(t, "text/plain", fake.objects["index.tsv"].contentType)
}

func TestWriteForbidden(t *testing.T) {
	fake, store := setupStore(t)
	fake.mx.Lock()
	fake.forbidden = true
	fake.mx.Unlock()

	err := writeObject(t, store, "index.tsv", "row\r\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrForbidden))
	assert.Empty(t, fake.objects)
}
