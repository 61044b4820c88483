// internal/model/defaults.go
package model

// Fallback content shown when the store is unreachable or empty.

func DefaultHero() HeroContent {
	return HeroContent{
		Title:       "Tiffany Sparkles",
		Subtitle:    "Premium Microfiber Excellence",
		Description: "Experience the ultimate in cleaning technology with our superior microfiber cloths. Designed for modern lifestyles, crafted with precision, and built to last.",
		ImageURL:    "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?q=80&w=2000",
	}
}

func DefaultAbout() AboutContent {
	return AboutContent{
		Title:       "Our Story of Excellence",
		Description: "Tiffany Sparkles represents the pinnacle of microfiber innovation, brought to you by Dinesh Gupta Limited, a trusted name in quality manufacturing for over a decade.",
		Content:     "Our journey began with a simple vision: to revolutionize the cleaning industry through superior microfiber technology. Today, we are proud to offer products that combine cutting-edge science with elegant design, making cleaning not just effective, but enjoyable.",
		Images:      []string{"https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?q=80&w=2000"},
		Stats: []Stat{
			{Number: "15+", Label: "Years in Business", Icon: "Building2"},
			{Number: "1M+", Label: "Happy Customers", Icon: "Users"},
			{Number: "50+", Label: "Industry Awards", Icon: "Award"},
			{Number: "50+", Label: "Countries Served", Icon: "Globe"},
		},
	}
}

func DefaultProducts() ProductsContent {
	return ProductsContent{
		Title:       "Featured Products",
		Description: "Discover our bestselling microfiber cloths, trusted by thousands of customers",
		Products: []Product{
			{
				Name:        "Premium Multi-Surface Cloth",
				Description: "Perfect for glass, electronics, and delicate surfaces. Ultra-soft microfiber.",
				Images:      []string{"https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?q=80&w=400"},
				Rating:      4.9,
				Price:       "₹299",
			},
			{
				Name:        "Kitchen Pro Cleaning Set",
				Description: "Heavy-duty microfiber for kitchen counters, appliances, and tough stains.",
				Images:      []string{"https://images.unsplash.com/photo-1584622650111-993a426fbf0a?q=80&w=400"},
				Rating:      4.8,
				Price:       "₹499",
			},
			{
				Name:        "Car Care Collection",
				Description: "Specially designed for automotive surfaces. Scratch-free and lint-free.",
				Images:      []string{"https://images.unsplash.com/photo-1619642751034-765dfdf7c58e?q=80&w=400"},
				Rating:      4.9,
				Price:       "₹699",
			},
		},
	}
}

func DefaultHighlights() HighlightsContent {
	return HighlightsContent{
		Title:       "Why Choose Tiffany Sparkles?",
		Description: "Discover the difference that premium microfiber technology makes in your daily cleaning routine.",
		Items: []HighlightItem{
			{Title: "Superior Cleaning Power", Description: "Advanced microfiber technology that captures dirt and dust with unmatched efficiency, leaving surfaces spotless and streak-free.", Type: "feature"},
			{Title: "Durable & Long-lasting", Description: "Premium quality construction ensures our cloths maintain their effectiveness through hundreds of washes, providing exceptional value.", Type: "feature"},
			{Title: "Quick-Dry Technology", Description: "Innovative fiber weave allows for rapid drying, preventing odors and maintaining hygiene between uses.", Type: "feature"},
			{Title: "Multi-Surface Safe", Description: "Gentle yet effective on all surfaces - from delicate screens to kitchen counters, without scratching or damage.", Type: "feature"},
		},
	}
}

func DefaultMarketing() MarketingContent {
	return MarketingContent{
		Title:       "Marketing Showcase",
		Description: "Discover our latest campaigns and see why customers choose Tiffany Sparkles",
		Items: []MarketingItem{
			{Type: MediaImage, Src: "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?q=80&w=2000", Title: "Revolutionary Cleaning Technology", Subtitle: "Experience the future of microfiber", Overlay: true},
			{Type: MediaImage, Src: "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?q=80&w=2000", Title: "Trusted by Professionals", Subtitle: "Used in premium hotels and restaurants worldwide", Overlay: true},
			{Type: MediaImage, Src: "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?q=80&w=2000", Title: "See the Difference", Subtitle: "Watch our microfiber technology in action", Overlay: true},
		},
	}
}

func DefaultTestimonials() []Testimonial {
	return []Testimonial{
		{Name: "Priya Sharma", Location: "Mumbai", Rating: 5, IsActive: true,
			Message:   "These microfiber cloths are amazing! They clean my glass surfaces without any streaks. Best purchase I've made for my home.",
			AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?q=80&w=100"},
		{Name: "Rajesh Kumar", Location: "Delhi", Rating: 5, IsActive: true,
			Message:   "I use Tiffany Sparkles cloths for my car detailing business. Customers always ask what makes the finish so perfect!",
			AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=100"},
		{Name: "Sneha Patel", Location: "Bangalore", Rating: 5, IsActive: true,
			Message:   "Finally found cloths that don't leave lint on my electronics. The quality is outstanding and they last so long.",
			AvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?q=80&w=100"},
		{Name: "Modern Home Store", Location: "Pune", Rating: 5, IsActive: true,
			Message:   "Our customers love these products. We've been stocking Tiffany Sparkles for 2 years now - excellent quality and reliability.",
			AvatarURL: "https://images.unsplash.com/photo-1560250097-0b93528c311a?q=80&w=100"},
	}
}

func DefaultFAQs() []FAQ {
	faqs := []FAQ{
		{Question: "Where can I buy Tiffany Sparkles microfiber cloths?",
			Answer: "Our products are available at select retail stores across major cities. Use our store locator map or contact us via WhatsApp to find the nearest retailer. We also offer direct ordering through our customer service."},
		{Question: "Are the cloths machine washable?",
			Answer: "Yes! Our microfiber cloths are completely machine washable. We recommend washing in warm water without fabric softener for best results. They can be tumble dried on low heat or air dried."},
		{Question: "What makes Tiffany Sparkles cloths different from regular cloths?",
			Answer: "Our premium microfiber is specially engineered with ultra-fine fibers that trap dirt and dust effectively without scratching surfaces. They're lint-free, highly absorbent, and designed to last longer than conventional cleaning cloths."},
		{Question: "Can I use these cloths on electronic screens and delicate surfaces?",
			Answer: "Absolutely! Our cloths are safe for use on smartphones, tablets, laptops, TVs, and other electronic screens. The soft microfiber won't scratch or damage delicate surfaces."},
		{Question: "Do you offer bulk pricing for businesses?",
			Answer: "Yes, we offer special pricing for bulk orders and business customers. Contact us directly via WhatsApp or email to discuss your requirements and get a custom quote."},
		{Question: "What is your quality guarantee?",
			Answer: "We stand behind our products with a satisfaction guarantee. If you're not completely satisfied with your purchase, contact us within 30 days and we'll make it right."},
	}
	for i := range faqs {
		faqs[i].OrderIndex = i + 1
		faqs[i].IsActive = true
	}
	return faqs
}

// DefaultLocations carry no coordinates, so the fallback map shows no markers.
func DefaultLocations() []StoreLocation {
	return []StoreLocation{
		{Name: "Premium Homeware Mumbai", Address: "123 Shopping Mall, Bandra West, Mumbai 400050", Phone: "+91 98765 43210", StoreType: "Retail Partner", IsActive: true},
		{Name: "Quality Essentials Delhi", Address: "456 Market Street, Connaught Place, New Delhi 110001", Phone: "+91 98765 43211", StoreType: "Authorized Dealer", IsActive: true},
		{Name: "Home Solutions Bangalore", Address: "789 Commercial Complex, MG Road, Bangalore 560001", Phone: "+91 98765 43212", StoreType: "Retail Partner", IsActive: true},
	}
}

func DefaultContactSettings() ContactSettings {
	return ContactSettings{
		WhatsAppNumber: "+919876543210",
		InstagramURL:   "https://instagram.com/tiffanysparkles",
		FacebookURL:    "https://facebook.com/tiffanysparkles",
		TikTokURL:      "https://tiktok.com/@tiffanysparkles",
		Email:          "info@tiffanysparkles.com",
		Phone:          "+91 98765 43210",
		Address:        "Mumbai, India",
	}
}

func DefaultLogo() LogoSetting {
	return LogoSetting{URL: "", Alt: "Tiffany Sparkles"}
}
