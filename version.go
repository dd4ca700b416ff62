package ensemblrest

// Version is the library version reported in the default User-Agent header.
const Version = "0.4.0"

// UserAgent is the default User-Agent header value.
const UserAgent = "ensemblrest-go/" + Version
