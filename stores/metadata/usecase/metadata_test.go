package usecase

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/opensea-metadata/base/ctx"
	bValidator "github.com/x-xyz/opensea-metadata/base/validator"
	"github.com/x-xyz/opensea-metadata/domain"
	"github.com/x-xyz/opensea-metadata/domain/mocks"
	"github.com/x-xyz/opensea-metadata/domain/nftitem"
	webresource_repository "github.com/x-xyz/opensea-metadata/stores/web_resource/repository"
)

func daveStarbelly() *nftitem.Metadata {
	return &nftitem.Metadata{
		Name:        "Dave Starbelly",
		Description: "Friendly OpenSea Creature that enjoys long swims in the ocean.",
		Image:       "https://storage.googleapis.com/opensea-prod.appspot.com/puffs/3.png",
		ExternalUrl: "https://openseacreatures.io/3",
		Attributes: nftitem.Attributes{
			nftitem.NewStringAttribute("Base", "Starfish"),
			nftitem.NewStringAttribute("Eyes", "Big"),
			nftitem.NewStringAttribute("Mouth", "Surprised"),
			nftitem.NewNumberAttribute("Level", 5),
			nftitem.NewNumberAttribute("Stamina", 1.4),
			nftitem.NewStringAttribute("Personality", "Sad"),
			nftitem.NewDisplayAttribute(nftitem.DisplayTypeBoostNumber, "Aqua Power", 40),
			nftitem.NewDisplayAttribute(nftitem.DisplayTypeBoostPercentage, "Stamina Increase", 10),
			nftitem.NewDisplayAttribute(nftitem.DisplayTypeNumber, "Generation", 2),
			nftitem.NewDisplayAttribute(nftitem.DisplayTypeDate, "Birthday1", 1546360800),
			nftitem.NewDateAttribute("Birthday2", time.Date(2019, 1, 1, 18, 40, 0, 0, time.UTC)),
			nftitem.NewValueAttribute(nftitem.StringValue("Happy")),
			nftitem.NewBoundedAttribute("MaxValued", 10, 100),
		},
	}
}

func Test_metadataUseCase_Serialize_DaveStarbelly(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "dave_starbelly.json"))
	require.NoError(t, err)

	u := NewMetadataUseCase(&MetadataUseCaseCfg{})
	got, err := u.Serialize(bCtx.Background(), daveStarbelly())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func Test_metadataUseCase_Serialize(t *testing.T) {
	tests := []struct {
		name     string
		metadata *nftitem.Metadata
		want     string
		wantErr  error
	}{
		{
			name:     "empty",
			metadata: &nftitem.Metadata{},
			want:     "{}",
		},
		{
			name: "name and value only attribute",
			metadata: &nftitem.Metadata{
				Name:       "#01",
				Attributes: nftitem.Attributes{nftitem.NewValueAttribute(nftitem.NumberValue(3))},
			},
			want: "{\n\t\"name\": \"#01\",\n\t\"attributes\": [\n\t\t{\n\t\t\t\"value\": 3\n\t\t}\n\t]\n}",
		},
		{
			name: "image data wins over image",
			metadata: &nftitem.Metadata{
				Image:     "ipfs://cid/0.png",
				ImageData: `<svg xmlns="http://www.w3.org/2000/svg"></svg>`,
			},
			want: "{\n\t\"image_data\": \"<svg xmlns=\\\"http://www.w3.org/2000/svg\\\"></svg>\"\n}",
		},
		{
			name: "all top level fields in order",
			metadata: &nftitem.Metadata{
				YoutubeUrl:      "https://youtube.com/watch?v=1",
				AnimationUrl:    "ipfs://cid/0.mp4",
				BackgroundColor: "00FFaa",
				ExternalUrl:     "https://artkrys.gallery/",
				Image:           "ipfs://cid/0.png",
				Description:     "**bold** & <i>markup</i>",
				Name:            "BEING VAN GOGH",
			},
			want: "{\n" +
				"\t\"name\": \"BEING VAN GOGH\",\n" +
				"\t\"description\": \"**bold** & <i>markup</i>\",\n" +
				"\t\"image\": \"ipfs://cid/0.png\",\n" +
				"\t\"external_url\": \"https://artkrys.gallery/\",\n" +
				"\t\"background_color\": \"00FFaa\",\n" +
				"\t\"animation_url\": \"ipfs://cid/0.mp4\",\n" +
				"\t\"youtube_url\": \"https://youtube.com/watch?v=1\"\n" +
				"}",
		},
		{
			name: "null value is kept",
			metadata: &nftitem.Metadata{
				Attributes: nftitem.Attributes{{TraitType: "Unknown"}},
			},
			want: "{\n\t\"attributes\": [\n\t\t{\n\t\t\t\"trait_type\": \"Unknown\",\n\t\t\t\"value\": null\n\t\t}\n\t]\n}",
		},
		{
			name:     "background color with hash",
			metadata: &nftitem.Metadata{Name: "x", BackgroundColor: "#FFFFF"},
			wantErr:  domain.ErrInvalidFormat,
		},
		{
			name:     "background color too long",
			metadata: &nftitem.Metadata{BackgroundColor: "FFFFFFF"},
			wantErr:  domain.ErrInvalidFormat,
		},
		{
			name:     "background color not hex",
			metadata: &nftitem.Metadata{BackgroundColor: "red123"},
			wantErr:  domain.ErrInvalidFormat,
		},
		{
			name:     "nil metadata",
			metadata: nil,
			wantErr:  domain.ErrInvalidFormat,
		},
		{
			name: "unknown display type",
			metadata: &nftitem.Metadata{
				Attributes: nftitem.Attributes{nftitem.NewNumberAttribute("x", 1).WithDisplayType(nftitem.DisplayType(7))},
			},
			wantErr: domain.ErrInvalidFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewMetadataUseCase(&MetadataUseCaseCfg{})
			got, err := u.Serialize(bCtx.Background(), tt.metadata)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func Test_metadataUseCase_Serialize_Idempotent(t *testing.T) {
	u := NewMetadataUseCase(&MetadataUseCaseCfg{})
	m := daveStarbelly()
	m.ImageData = "<svg></svg>"

	first, err := u.Serialize(bCtx.Background(), m)
	require.NoError(t, err)
	second, err := u.Serialize(bCtx.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// the caller's value is not normalized in place
	assert.NotEmpty(t, m.Image)
}

func Test_metadataUseCase_Serialize_OnlyNameAndAttributes(t *testing.T) {
	u := NewMetadataUseCase(&MetadataUseCaseCfg{})
	got, err := u.Serialize(bCtx.Background(), &nftitem.Metadata{
		Name:       "Dave",
		Attributes: nftitem.Attributes{nftitem.NewValueAttribute(nftitem.StringValue("Happy"))},
	})
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &doc))
	assert.Len(t, doc, 2)
	assert.Equal(t, "Dave", doc["name"])
	assert.Equal(t, []interface{}{map[string]interface{}{"value": "Happy"}}, doc["attributes"])
}

func Test_metadataUseCase_Serialize_LineSeparatorsAndInvalidUTF8(t *testing.T) {
	u := NewMetadataUseCase(&MetadataUseCaseCfg{})
	got, err := u.Serialize(bCtx.Background(), &nftitem.Metadata{
		Name:        "x",
		Description: "line\u2028sep\u2029end bad\xffbyte",
	})
	require.NoError(t, err)
	// U+2028 and U+2029 are escaped, invalid bytes become an escaped U+FFFD
	assert.Equal(t, "{\n\t\"name\": \"x\",\n\t\"description\": \"line\\u2028sep\\u2029end bad\\ufffdbyte\"\n}", string(got))
}

func Test_metadataUseCase_Serialize_CustomValidator(t *testing.T) {
	u := NewMetadataUseCase(&MetadataUseCaseCfg{
		Validator: bValidator.NewCustomValidator(bValidator.New()),
	})
	_, err := u.Serialize(bCtx.Background(), &nftitem.Metadata{Name: "x", BackgroundColor: "GGGGGG"})
	assert.True(t, errors.Is(err, domain.ErrInvalidFormat))

	got, err := u.Serialize(bCtx.Background(), &nftitem.Metadata{Name: "x", BackgroundColor: "0a0B0c"})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"name\": \"x\",\n\t\"background_color\": \"0a0B0c\"\n}", string(got))
}

func Test_metadataUseCase_Save(t *testing.T) {
	path := "metadata/0"
	metadata := &nftitem.Metadata{Name: "REBIRTH"}
	body := []byte("{\n\t\"name\": \"REBIRTH\"\n}")
	tests := []struct {
		name     string
		storeErr error
		wantErr  bool
	}{
		{
			name:     "error",
			storeErr: domain.ErrIo,
			wantErr:  true,
		},
		{
			name:    "stored",
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &mocks.WebResourceWriterRepository{}
			writer.On("Store", mock.Anything, path, body).Return(path, tt.storeErr)
			u := NewMetadataUseCase(&MetadataUseCaseCfg{
				Writer: writer,
			})
			err := u.Save(bCtx.Background(), metadata, path)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrIo))
			} else {
				assert.NoError(t, err)
			}
			writer.AssertExpectations(t)
		})
	}
}

func Test_metadataUseCase_Save_InvalidFormatWritesNothing(t *testing.T) {
	writer := &mocks.WebResourceWriterRepository{}
	u := NewMetadataUseCase(&MetadataUseCaseCfg{
		Writer: writer,
	})
	err := u.Save(bCtx.Background(), &nftitem.Metadata{BackgroundColor: "#000000"}, "out/0")
	assert.True(t, errors.Is(err, domain.ErrInvalidFormat))
	writer.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func Test_metadataUseCase_Save_FileSystem(t *testing.T) {
	dir := t.TempDir()
	u := NewMetadataUseCase(&MetadataUseCaseCfg{
		Writer: webresource_repository.NewFileWriterRepo(),
	})
	c := bCtx.Background()

	path := filepath.Join(dir, "nested", "metadata_0.json")
	require.NoError(t, u.Save(c, daveStarbelly(), path))

	want, err := os.ReadFile(filepath.Join("testdata", "dave_starbelly.json"))
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	invalid := filepath.Join(dir, "invalid", "1")
	err = u.Save(c, &nftitem.Metadata{BackgroundColor: "fff"}, invalid)
	assert.True(t, errors.Is(err, domain.ErrInvalidFormat))
	_, err = os.Stat(invalid)
	assert.True(t, os.IsNotExist(err))
}
