package sanity

// GROQ queries for the site's published content. Slug and limit
// parameters are passed as query params, never interpolated.
const (
	WeddingStoriesQuery = `
  *[_type == "weddingStory" && defined(slug.current)]
  | order(weddingDate desc){
    _id,
    title,
    "slug": slug.current,
    location,
    weddingDate,
    heroImage,
    shortIntro,
    featured,
  }
`

	FeaturedStoriesQuery = `
  *[_type == "weddingStory" && defined(slug.current) && featured == true]
  | order(weddingDate desc)[0...3]{
    _id,
    title,
    "slug": slug.current,
    location,
    weddingDate,
    heroImage,
    shortIntro,
    featured,
  }
`

	StoryBySlugQuery = `
  *[_type == "weddingStory" && slug.current == $slug][0]{
    _id,
    title,
    "slug": slug.current,
    location,
    weddingDate,
    heroImage,
    shortIntro,
    gallery
  }
`

	FilmsQuery = `
  *[_type == "film" && defined(slug.current)]
  | order(_createdAt desc){
    _id,
    title,
    coupleNames,
    "slug": slug.current,
    videoFile{
      asset->{
        _id,
        url,
        originalFilename,
        mimeType,
        size
      }
    },
    vimeoId,
    thumbnail,
    featured,
  }
`

	TestimonialsQuery = `
  *[_type == "testimonial" && defined(quote)]
  | order(_createdAt desc)[0...5]{
    _id,
    coupleNames,
    locationOrContext,
    quote,
  }
`

	GalleryQuery = `
  *[_type == "galleryImage" && defined(image.asset)]
  | order(_createdAt desc){
    _id,
    title,
    image,
    featured,
  }
`

	AlbumsQuery = `
  *[_type == "album"]
  | order(_createdAt desc){
    _id,
    name,
    description,
    coverImage,
    detailImages,
  }
`

	PreWeddingQuery = `
  *[_type == "preWeddingShoot" && defined(slug.current)]
  | order(_createdAt desc){
    _id,
    title,
    "slug": slug.current,
    location,
    heroImage,
    story,
  }
`

	HeroImageQuery = `
  *[_type == "heroImage" && active == true]
  | order(_createdAt desc)[0]{
    _id,
    active,
    leftImage,
    rightImage,
    mainTagline,
    secondaryText,
  }
`

	AboutQuery = `
  *[_type == "about"][0]{
    _id,
    title,
    intro,
    mainImage,
    story,
    values,
    awards,
    contactInfo,
  }
`

	RecentLeadsQuery = `
  *[_type == "lead"]
  | order(_createdAt desc)[0...$limit]{
    _id,
    name,
    whatsapp,
    weddingDate,
    city,
    source,
  }
`
)
