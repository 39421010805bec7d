package main

import (
	"time"

	"github.com/x-xyz/opensea-metadata/domain/nftitem"
)

const exampleFile = "metadata_0.json"

// exampleMetadata is the sample item of https://docs.opensea.io/docs/metadata-standards
func exampleMetadata() *nftitem.Metadata {
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
